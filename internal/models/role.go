package models

const (
	RoleUser  = "USER"
	RoleCoach = "COACH"
	RoleAdmin = "ADMIN"
)
