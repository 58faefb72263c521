package sqlite

var schema = []string{
	`CREATE TABLE IF NOT EXISTS m_guru (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nama TEXT NOT NULL,
		nip TEXT NOT NULL UNIQUE,
		nomor_hp TEXT NOT NULL UNIQUE,
		alamat TEXT NOT NULL,
		created_date TEXT NOT NULL,
		modified_date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_guru_created_date ON m_guru (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_guru_modified_date ON m_guru (modified_date)`,

	`CREATE TABLE IF NOT EXISTS m_kelas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nama TEXT NOT NULL,
		deskripsi TEXT NOT NULL UNIQUE,
		kapasitas INTEGER NOT NULL CHECK (kapasitas >= 1),
		created_date TEXT NOT NULL,
		modified_date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_m_kelas_created_date ON m_kelas (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_m_kelas_modified_date ON m_kelas (modified_date)`,

	`CREATE TABLE IF NOT EXISTS m_mata_pelajaran (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nama TEXT NOT NULL,
		deskripsi TEXT NOT NULL,
		created_date TEXT NOT NULL,
		modified_date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_m_mata_pelajaran_created_date ON m_mata_pelajaran (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_m_mata_pelajaran_modified_date ON m_mata_pelajaran (modified_date)`,

	`CREATE TABLE IF NOT EXISTS m_student (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_date TEXT NOT NULL,
		modified_date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_student_created_date ON m_student (created_date)`,
	`CREATE INDEX IF NOT EXISTS idx_student_modified_date ON m_student (modified_date)`,
}
