package volunteering

import "donatehub/pkg/types"

// ToRequest builds the submission payload. Type always mirrors Category.
func ToRequest(form types.VolunteeringResourceForm) *types.DonateVolunteeringRequest {
	return &types.DonateVolunteeringRequest{
		Name:           form.Name,
		Category:       form.Category,
		Town:           form.Town,
		Description:    form.Description,
		AvailableUntil: form.AvailableUntil,
		CountyCoverage: append([]string{}, form.CountyCoverage...),
		Type:           form.Category,
	}
}
