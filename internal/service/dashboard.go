package service

import (
	"sort"

	"github.com/shenikar/blood_connect/internal/models"
)

// dashboardLimit - сколько заявок показывается на главной странице
const dashboardLimit = 3

// RelevantRequests выбирает заявки, интересные пользователю с учетом его роли.
// Исходный срез не изменяется.
func RelevantRequests(user *models.User, requests []*models.BloodRequest) []*models.BloodRequest {
	var selected []*models.BloodRequest

	switch user.Role {
	case models.RoleDonor:
		selected = filterRequests(requests, func(r *models.BloodRequest) bool {
			return r.Status == models.StatusPending
		})
		// Сначала заявки с группой крови донора, затем по срочности
		sort.SliceStable(selected, func(i, j int) bool {
			mi := selected[i].BloodType == user.BloodType
			mj := selected[j].BloodType == user.BloodType
			if mi != mj {
				return mi
			}
			return selected[i].Urgency.Rank() < selected[j].Urgency.Rank()
		})
	case models.RoleHospital:
		selected = filterRequests(requests, func(r *models.BloodRequest) bool {
			return r.RequesterID == user.ID
		})
	case models.RoleRequester:
		selected = filterRequests(requests, func(r *models.BloodRequest) bool {
			return r.RequesterID == user.ID || r.Urgency == models.UrgencyCritical
		})
	case models.RolePatient:
		selected = filterRequests(requests, func(r *models.BloodRequest) bool {
			return r.RequesterID == user.ID || (user.BloodType != "" && r.BloodType == user.BloodType)
		})
	default:
		selected = filterRequests(requests, func(*models.BloodRequest) bool { return true })
	}

	if len(selected) > dashboardLimit {
		selected = selected[:dashboardLimit]
	}
	return selected
}

func filterRequests(requests []*models.BloodRequest, keep func(*models.BloodRequest) bool) []*models.BloodRequest {
	out := make([]*models.BloodRequest, 0, len(requests))
	for _, r := range requests {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
