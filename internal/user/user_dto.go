package user

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"name" binding:"max=255"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role" binding:"required,oneof=super_admin manager supervisor operator client"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserRequest serves both PUT and PATCH; absent fields are left as is.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
	FullName *string `json:"name" binding:"omitempty,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Role     *string `json:"role" binding:"omitempty,oneof=super_admin manager supervisor operator client"`
	IsActive *bool   `json:"is_active"`
}

type ListUsersQuery struct {
	Role           string `form:"role"`
	Search         string `form:"search"`
	IncludeDeleted bool   `form:"include_deleted"`
	Page           int    `form:"page"`
	PageSize       int    `form:"page_size"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"name"`
	Phone       string  `json:"phone"`
	Role        string  `json:"role"`
	RoleLabel   string  `json:"role_display"`
	IsActive    bool    `json:"is_active"`
	IsDeleted   bool    `json:"is_deleted"`
	DeletedAt   *string `json:"deleted_at,omitempty"`
	LastLoginAt *string `json:"last_login,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
