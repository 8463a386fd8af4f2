package models

import "time"

type Achievement struct {
	Base
	UserID          string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	FileURL         string    `json:"fileUrl"`
	CertificateLink string    `json:"certificateLink"`
	AchievedAt      time.Time `json:"achievedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}
