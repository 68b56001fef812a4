package models

import (
	"time"
)

// RoleName - роль пользователя в системе
type RoleName string

const (
	RoleMember           RoleName = "MEMBER"
	RoleRescueCaptain    RoleName = "RESCUE_CAPTAIN"
	RoleInventoryManager RoleName = "INVENTORY_MANAGER"
	RoleAdmin            RoleName = "ADMIN"
	RoleSuperAdmin       RoleName = "SUPER_ADMIN"
)

// AvailabilityStatus - статус готовности волонтера к выездам
type AvailabilityStatus string

const (
	Available   AvailabilityStatus = "AVAILABLE"
	Unavailable AvailabilityStatus = "UNAVAILABLE"
)

// ExperienceLevel - уровень опыта волонтера
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
	ExperienceExpert       ExperienceLevel = "EXPERT"
)

// Rank возвращает порядковый номер уровня опыта для сортировки
func (e ExperienceLevel) Rank() int {
	switch e {
	case ExperienceBeginner:
		return 0
	case ExperienceIntermediate:
		return 1
	case ExperienceAdvanced:
		return 2
	case ExperienceExpert:
		return 3
	}
	return -1
}

type User struct {
	ID                 int64              `json:"id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	PhoneNumber        string             `json:"phone_number"`
	Address            string             `json:"address,omitempty"`
	Motivation         string             `json:"motivation,omitempty"`
	HasVehicle         bool               `json:"has_vehicle"`
	VehicleType        *string            `json:"vehicle_type,omitempty"`
	CanProvideShelter  bool               `json:"can_provide_shelter"`
	HasMedicineBox     bool               `json:"has_medicine_box"`
	Latitude           *float64           `json:"latitude,omitempty"`
	Longitude          *float64           `json:"longitude,omitempty"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	ExperienceLevel    ExperienceLevel    `json:"experience_level"`
	JoinedSince        time.Time          `json:"joined_since"`
	Roles              []RoleName         `json:"roles,omitempty"`
}

// FullName возвращает полное имя пользователя
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// PendingUser - заявка на регистрацию, ожидающая одобрения администратором
type PendingUser struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	PasswordHash      string    `json:"-"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	PhoneNumber       string    `json:"phone_number"`
	Address           string    `json:"address,omitempty"`
	Motivation        string    `json:"motivation,omitempty"`
	HasVehicle        bool      `json:"has_vehicle"`
	VehicleType       *string   `json:"vehicle_type,omitempty"`
	CanProvideShelter bool      `json:"can_provide_shelter"`
	HasMedicineBox    bool      `json:"has_medicine_box"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	SignedUpAt        time.Time `json:"signed_up_at"`
}

// Credentials - учетные данные для входа
type Credentials struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// UserStats - накопленная статистика волонтера
type UserStats struct {
	UserID           int64   `json:"user_id"`
	Points           int     `json:"points"`
	Hearts           int     `json:"hearts"`
	DistanceTraveled float64 `json:"distance_traveled"`
	CasesCompleted   int     `json:"cases_completed"`
}

// LeaderboardEntry - строка таблицы лидеров
type LeaderboardEntry struct {
	Rank             int     `json:"rank"`
	UserID           int64   `json:"user_id"`
	FirstName        string  `json:"first_name"`
	Points           int     `json:"points"`
	Hearts           int     `json:"hearts"`
	DistanceTraveled float64 `json:"distance_traveled"`
	CasesCompleted   int     `json:"cases_completed"`
}

// BatchDeleteResult - итог пакетного удаления пользователей
type BatchDeleteResult struct {
	Deleted []BatchDeleteItem `json:"deleted"`
	Skipped []BatchDeleteItem `json:"skipped"`
}

type BatchDeleteItem struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason,omitempty"`
}
