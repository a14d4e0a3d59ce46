package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name" form:"name"`
	Avatar string `json:"avatar" form:"avatar"`
}

type UpdatePreferencesRequest struct {
	Theme    string `json:"theme" form:"theme" binding:"omitempty,oneof=dark light"`
	Language string `json:"language" form:"language" binding:"omitempty,oneof=ar en fr"`
}

type CreateRequestRequest struct {
	ClientName  string `json:"clientName" form:"client_name" binding:"required,min=2"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	ProjectType string `json:"projectType" form:"project_type" binding:"required"`
	Description string `json:"description" form:"description" binding:"required,min=10"`
	Budget      string `json:"budget" form:"budget"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type SendMessageRequest struct {
	Name  string `json:"name" form:"name" binding:"required,min=2"`
	Phone string `json:"phone" form:"phone" binding:"required"`
	Text  string `json:"text" form:"text" binding:"required"`
}

type AddBannerRequest struct {
	ImageURL string `json:"imageUrl" form:"image_url" binding:"required,url"`
	Title    string `json:"title" form:"title" binding:"required"`
}

type RefineBriefRequest struct {
	Description string `json:"description" form:"description" binding:"required,min=10"`
	ProjectType string `json:"projectType" form:"project_type" binding:"required"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" form:"title" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

type SendChatMessageRequest struct {
	Text string `json:"text" form:"text" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}
