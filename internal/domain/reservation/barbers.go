package reservation

import "github.com/barberbook/reservation-api/internal/models"

// Static provider catalog. There is no barber management in this API;
// the list backs the barbers endpoint and the name denormalized onto a
// reservation at booking time.
var barbers = []models.Barber{
	{ID: "1", Name: "Carlos Silva", Specialties: []string{"haircut", "beard-trim"}, Rating: 4.8},
	{ID: "2", Name: "Miguel Santos", Specialties: []string{"haircut", "shave", "full-service"}, Rating: 4.9},
	{ID: "3", Name: "Rafael Costa", Specialties: []string{"shave", "beard-trim"}, Rating: 4.7},
	{ID: "4", Name: "André Oliveira", Specialties: []string{"haircut", "full-service"}, Rating: 4.6},
}

func Barbers() []models.Barber {
	return barbers
}

func FindBarber(id string) (models.Barber, bool) {
	for _, b := range barbers {
		if b.ID == id {
			return b, true
		}
	}
	return models.Barber{}, false
}
