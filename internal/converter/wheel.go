package converter

import (
	"wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/model"
)

func ToSpinResponse(outcome *model.SpinOutcome) wheel.SpinResponse {
	return wheel.SpinResponse{
		Prize:   outcome.Prize.Label,
		Amount:  outcome.Prize.Amount,
		Index:   outcome.Index,
		Balance: outcome.Balance,
	}
}

func ToConfigResponse(data *model.WheelData) wheel.ConfigResponse {
	return wheel.ConfigResponse{
		Labels:      data.Labels,
		SpinCost:    data.SpinCost,
		MinWithdraw: data.MinWithdraw,
	}
}
