package property

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

func sampleModel() models.Property {
	return models.Property{
		ID:            uuid.New(),
		Title:         "Bedsitter in Bamburi",
		City:          "Mombasa",
		Neighborhood:  "Bamburi",
		Type:          "Bedsitter",
		Bedrooms:      "Bedsitter",
		Bathroom:      "1",
		Price:         6500,
		Available:     true,
		LandlordName:  "Jane Mwangi",
		LandlordPhone: "+254700000000",
		Images:        pq.StringArray{},
		Features:      pq.StringArray{},
		NearbyPlaces:  pq.StringArray{},
	}
}
