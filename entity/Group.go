package entity

import (
	"gorm.io/gorm"
)

// Role is the name of a staff group.
type Role string

const (
	RoleManager      Role = "Manager"
	RoleDeliveryCrew Role = "Delivery Crew"
)

// Roles lists every group that is bootstrapped at startup.
var Roles = []Role{RoleManager, RoleDeliveryCrew}

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}

func (Group) TableName() string { return "staff_groups" }
