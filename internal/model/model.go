package model

import "time"

type Teacher struct {
	ID           int32
	Nama         string
	NIP          string
	NomorHP      string
	Alamat       string
	CreatedDate  time.Time
	ModifiedDate time.Time
}

type Class struct {
	ID           int32
	Nama         string
	Deskripsi    string
	Kapasitas    int32
	CreatedDate  time.Time
	ModifiedDate time.Time
}

type Subject struct {
	ID           int32
	Nama         string
	Deskripsi    string
	CreatedDate  time.Time
	ModifiedDate time.Time
}

type Student struct {
	ID           int32
	Name         string
	CreatedDate  time.Time
	ModifiedDate time.Time
}
