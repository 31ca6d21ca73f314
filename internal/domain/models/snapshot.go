package models

import "time"

// BreedingSnapshot is the daily analytics document persisted to MongoDB by
// the reporting service.
type BreedingSnapshot struct {
	ID             string    `bson:"_id" json:"id"`
	FarmID         string    `bson:"farm_id" json:"farmId"`
	Date           time.Time `bson:"date" json:"date"`
	TotalRecords   int       `bson:"total_records" json:"totalRecords"`
	Pregnant       int       `bson:"pregnant" json:"pregnant"`
	DueSoon        int       `bson:"due_soon" json:"dueSoon"`
	Overdue        int       `bson:"overdue" json:"overdue"`
	Delivered      int       `bson:"delivered" json:"delivered"`
	TotalOffspring int       `bson:"total_offspring" json:"totalOffspring"`
	DistinctBreeds int       `bson:"distinct_breeds" json:"distinctBreeds"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
