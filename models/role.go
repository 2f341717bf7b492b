package models

type Role string

const (
	AdministratorRole Role = "administrator"
	StaffRole         Role = "staff"
)
