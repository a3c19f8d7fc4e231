package entity

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	Recipient string           `json:"recipient"`
	Subject   string           `json:"subject"`
	Body      string           `json:"body" gorm:"type:text"`
	Type      NotificationType `json:"type"`
	IsHTML    bool             `json:"isHtml"`
	Sent      bool             `json:"sent"`
}
