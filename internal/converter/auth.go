package converter

import (
	dto "wheel_backend/internal/api/dto/auth"
	"wheel_backend/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
