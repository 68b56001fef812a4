package v1

import "github.com/pawsome-ngo/rescue-backend/internal/models"

// SignUpRequestToPendingUser преобразует DTO регистрации в модель заявки
func SignUpRequestToPendingUser(dto SignUpRequest) *models.PendingUser {
	return &models.PendingUser{
		Username:          dto.Username,
		FirstName:         dto.FirstName,
		LastName:          dto.LastName,
		PhoneNumber:       dto.PhoneNumber,
		Address:           dto.Address,
		Motivation:        dto.Motivation,
		HasVehicle:        dto.HasVehicle,
		VehicleType:       dto.VehicleType,
		CanProvideShelter: dto.CanProvideShelter,
		HasMedicineBox:    dto.HasMedicineBox,
		Latitude:          dto.Latitude,
		Longitude:         dto.Longitude,
	}
}

// ReportRequestToIncident преобразует DTO регистрации инцидента в доменную модель
func ReportRequestToIncident(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		InformerName:  dto.InformerName,
		ContactNumber: dto.ContactNumber,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		Location:      dto.Location,
		AnimalType:    models.AnimalType(dto.AnimalType),
		Description:   dto.Description,
	}
}

// RolesFromStrings преобразует список строк в доменные роли
func RolesFromStrings(roles []string) []models.RoleName {
	result := make([]models.RoleName, len(roles))
	for i, role := range roles {
		result[i] = models.RoleName(role)
	}
	return result
}

// RequisitionItemsFromRequest преобразует строки заявки в доменные модели
func RequisitionItemsFromRequest(items []RequisitionItemRequest) []*models.RequisitionItem {
	result := make([]*models.RequisitionItem, len(items))
	for i, item := range items {
		result[i] = &models.RequisitionItem{
			InventoryItemID: item.InventoryItemID,
			Quantity:        item.Quantity,
		}
	}
	return result
}
