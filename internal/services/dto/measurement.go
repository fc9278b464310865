package dto

type CreateTemplateRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Description     string                 `json:"description"`
	MeasurementType string                 `json:"measurement_type" binding:"required" validate:"is-measurement-type"`
	StandardFields  map[string]interface{} `json:"standard_measurements"`
}

type UpdateTemplateRequest struct {
	Name           *string                `json:"name,omitempty"`
	Description    *string                `json:"description,omitempty"`
	StandardFields map[string]interface{} `json:"standard_measurements,omitempty"`
}

type CreateMeasurementRequest struct {
	TemplateID   string                 `json:"template_id" binding:"required,uuid"`
	Measurements map[string]interface{} `json:"measurements" binding:"required"`
	Notes        string                 `json:"notes"`
}

type UpdateMeasurementRequest struct {
	Measurements map[string]interface{} `json:"measurements,omitempty"`
	Notes        *string                `json:"notes,omitempty"`
}
