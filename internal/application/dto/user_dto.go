package dto

import "time"

// RegisterRequest datos de registro de un cliente nuevo.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse representación pública de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateUserRequest cambios de rol o estado aplicables por un administrador.
type UpdateUserRequest struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// SellerResponse vendedor candidato para el checkout.
type SellerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SellerSummaryResponse vendedor con su carga de pedidos (administración).
type SellerSummaryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	OrderCount int    `json:"orderCount"`
}
