package models

import "time"

type Supplier struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Rating        int       `json:"rating"`
	DateAdded     time.Time `json:"date_added"`
}
