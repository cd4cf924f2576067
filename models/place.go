package models

// Place is a saved favorite location. ID is the Firestore document id and is not stored as a field.
type Place struct {
	ID          string  `json:"id" firestore:"-"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Address     string  `json:"address" firestore:"address"`
	Rating      float64 `json:"rating" firestore:"rating"`
	ImageURL    *string `json:"imageUrl" firestore:"imageUrl"`
}

// SetRating changes the in-memory rating only. Use PlaceService.UpdateRating to persist it.
func (p *Place) SetRating(rating float64) {
	p.Rating = rating
}

// Document maps the place to the flat field set written to the places collection.
func (p *Place) Document() map[string]interface{} {
	var imageURL interface{}
	if p.ImageURL != nil {
		imageURL = *p.ImageURL
	}
	return map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"address":     p.Address,
		"rating":      p.Rating,
		"imageUrl":    imageURL,
	}
}
