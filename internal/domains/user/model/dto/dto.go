package dto

import (
	"agenda/internal/domains/user/model"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"          validate:"required,email"`
	Password string  `json:"password"       validate:"required,min=8"`
	Level    string  `json:"level"          validate:"omitempty,oneof=admin user"`
	Name     *string `json:"name,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RoleUser
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Level:    level,
		Name:     r.Name,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Level     string  `json:"level"`
	Name      *string `json:"name,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.Name = model.Name
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Level  *string `db:"level"  json:"level,omitempty"  validate:"omitempty,oneof=admin user"`
	Name   *string `db:"name"   json:"name,omitempty"`
	Active *bool   `db:"active" json:"active,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
