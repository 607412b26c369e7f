package structs

type CreateBarRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=300"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`

	// Dashboard credentials provisioned together with the bar.
	StaffEmail    string `json:"staff_email" validate:"required,email"`
	StaffPassword string `json:"staff_password" validate:"required,min=8,max=128"`

	// Initial table count; tables are named "Mesa 1".."Mesa n".
	TableCount int `json:"table_count,omitempty" validate:"omitempty,gte=0,lte=500"`
}

type UpdateBarRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=300"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	LogoURL       *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url"`
}
