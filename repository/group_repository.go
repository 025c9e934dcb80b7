package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

// GroupRepository owns the users <-> groups membership table and is the
// role directory the order policy consults.
type GroupRepository struct{ DB *gorm.DB }

func NewGroupRepository(db *gorm.DB) *GroupRepository { return &GroupRepository{DB: db} }

func (r *GroupRepository) GetByRole(role entity.Role) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", string(role)).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepository) HasRole(userID uint, role entity.Role) (bool, error) {
	var cnt int64
	err := r.DB.Table("user_groups AS ug").
		Joins("JOIN staff_groups g ON g.id = ug.group_id").
		Where("ug.user_id = ? AND g.name = ? AND g.deleted_at IS NULL", userID, string(role)).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *GroupRepository) Members(role entity.Role) ([]entity.User, error) {
	g, err := r.GetByRole(role)
	if err != nil {
		return nil, err
	}
	var users []entity.User
	if err := r.DB.Model(g).Order("users.id").Association("Users").Find(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddMember is a no-op when the user is already in the group.
func (r *GroupRepository) AddMember(role entity.Role, u *entity.User) error {
	g, err := r.GetByRole(role)
	if err != nil {
		return err
	}
	return r.DB.Model(g).Association("Users").Append(u)
}

func (r *GroupRepository) RemoveMember(role entity.Role, u *entity.User) error {
	g, err := r.GetByRole(role)
	if err != nil {
		return err
	}
	return r.DB.Model(g).Association("Users").Delete(u)
}
