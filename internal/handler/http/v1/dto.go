package v1

import (
	"github.com/pawsome-ngo/rescue-backend/internal/models"
)

// SignUpRequest DTO заявки на регистрацию волонтера
// @Description DTO заявки на регистрацию волонтера
type SignUpRequest struct {
	Username          string   `json:"username" validate:"required,min=3,max=50"`
	Password          string   `json:"password" validate:"required,min=6"`
	FirstName         string   `json:"first_name" validate:"required,max=100"`
	LastName          string   `json:"last_name" validate:"required,max=100"`
	PhoneNumber       string   `json:"phone_number" validate:"required,min=5,max=20"`
	Address           string   `json:"address,omitempty"`
	Motivation        string   `json:"motivation,omitempty"`
	HasVehicle        bool     `json:"has_vehicle"`
	VehicleType       *string  `json:"vehicle_type,omitempty"`
	CanProvideShelter bool     `json:"can_provide_shelter"`
	HasMedicineBox    bool     `json:"has_medicine_box"`
	Latitude          *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// LoginRequest DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO ответа на успешный вход
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ProfileResponse DTO профиля волонтера со статистикой
type ProfileResponse struct {
	User  *models.User      `json:"user"`
	Stats *models.UserStats `json:"stats"`
}

// UpdateAvailabilityRequest DTO смены статуса готовности
type UpdateAvailabilityRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE UNAVAILABLE"`
}

// UpdateLocationRequest DTO обновления координат
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// UpdateVehicleRequest DTO обновления данных о транспорте
type UpdateVehicleRequest struct {
	HasVehicle  bool    `json:"has_vehicle"`
	VehicleType *string `json:"vehicle_type,omitempty"`
}

// UpdateMedicineBoxRequest DTO обновления признака аптечки
type UpdateMedicineBoxRequest struct {
	HasMedicineBox *bool `json:"has_medicine_box" validate:"required"`
}

// UpdateShelterRequest DTO обновления признака передержки
type UpdateShelterRequest struct {
	CanProvideShelter *bool `json:"can_provide_shelter" validate:"required"`
}

// UpdateExperienceRequest DTO смены уровня опыта
type UpdateExperienceRequest struct {
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
}

// ChangePasswordRequest DTO смены пароля
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UpdateRolesRequest DTO замены ролей пользователя
type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=MEMBER RESCUE_CAPTAIN INVENTORY_MANAGER ADMIN SUPER_ADMIN"`
}

// BatchDeleteRequest DTO пакетного удаления пользователей
type BatchDeleteRequest struct {
	UserIDs     []int64 `json:"user_ids" validate:"required,min=1"`
	NotifyUsers bool    `json:"notify_users"`
}

// ReportIncidentRequest DTO регистрации инцидента
// @Description DTO регистрации инцидента
type ReportIncidentRequest struct {
	InformerName  string   `json:"informer_name" validate:"required,max=100"`
	ContactNumber string   `json:"contact_number" validate:"required,min=5,max=20"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Location      string   `json:"location,omitempty"`
	AnimalType    string   `json:"animal_type" validate:"required,oneof=DOG CAT CATTLE BIRD OTHER"`
	Description   string   `json:"description,omitempty"`
}

// UpdateIncidentLocationRequest DTO корректировки координат инцидента
type UpdateIncidentLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// UpdateIncidentStatusRequest DTO явного перевода статуса инцидента.
// Причина обязательна только для перевода в CLOSED.
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

// CloseIncidentRequest DTO закрытия инцидента без выезда
type CloseIncidentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// AssignTeamRequest DTO назначения команды на инцидент
type AssignTeamRequest struct {
	UserIDs []int64 `json:"user_ids" validate:"required,min=1"`
}

// ConfirmInitiationRequest DTO подтверждения начала выезда
type ConfirmInitiationRequest struct {
	ParticipatingUserIDs []int64 `json:"participating_user_ids" validate:"required,min=1"`
}

// CompleteCaseRequest DTO закрытия выезда
type CompleteCaseRequest struct {
	ResolutionNotes string   `json:"resolution_notes" validate:"required"`
	FinalLatitude   *float64 `json:"final_latitude,omitempty" validate:"omitempty,latitude"`
	FinalLongitude  *float64 `json:"final_longitude,omitempty" validate:"omitempty,longitude"`
}

// SendMessageRequest DTO отправки сообщения в чат
type SendMessageRequest struct {
	Text            *string `json:"text,omitempty"`
	ClientMessageID *string `json:"client_message_id,omitempty"`
	ParentMessageID *string `json:"parent_message_id,omitempty"`
}

// ReactionRequest DTO реакции на сообщение
type ReactionRequest struct {
	Reaction string `json:"reaction" validate:"required,max=16"`
}

// CategoryRequest DTO категории инвентаря
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ItemRequest DTO складской позиции
type ItemRequest struct {
	CategoryID        int64  `json:"category_id" validate:"required"`
	Name              string `json:"name" validate:"required,max=100"`
	Quantity          int    `json:"quantity" validate:"gte=0"`
	LowStockThreshold int    `json:"low_stock_threshold" validate:"gte=0"`
	Unit              string `json:"unit,omitempty"`
}

// KitItemRequest DTO добавления самостоятельно закупленного предмета в аптечку
type KitItemRequest struct {
	InventoryItemID int64 `json:"inventory_item_id" validate:"required"`
	Quantity        int   `json:"quantity" validate:"gt=0"`
}

// UpdateKitItemRequest DTO изменения количества предмета в аптечке
type UpdateKitItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// RequisitionItemRequest - строка заявки на выдачу инвентаря
type RequisitionItemRequest struct {
	InventoryItemID int64 `json:"inventory_item_id" validate:"required"`
	Quantity        int   `json:"quantity" validate:"gt=0"`
}

// RequisitionRequest DTO заявки на выдачу инвентаря
type RequisitionRequest struct {
	Items []RequisitionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SubscribeRequest DTO регистрации push-подписки браузера
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	P256dh   string `json:"p256dh" validate:"required"`
	Auth     string `json:"auth" validate:"required"`
}

// UnsubscribeRequest DTO отзыва push-подписки
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
}

// CountResponse DTO ответа с количеством затронутых записей
type CountResponse struct {
	Count int `json:"count"`
}
