package services

import (
	"strings"

	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/sirupsen/logrus"
)

// GroupService manages membership of the Manager and Delivery Crew groups.
type GroupService struct {
	Groups *repository.GroupRepository
	Users  *repository.UserRepository
	Log    logrus.FieldLogger
}

func NewGroupService(groups *repository.GroupRepository, users *repository.UserRepository, log logrus.FieldLogger) *GroupService {
	return &GroupService{Groups: groups, Users: users, Log: log}
}

func (s *GroupService) Members(role entity.Role) ([]entity.User, error) {
	users, err := s.Groups.Members(role)
	if err != nil {
		return nil, notFound(err)
	}
	return users, nil
}

func (s *GroupService) Add(role entity.Role, username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	u, err := s.Users.FindByUsername(username)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.Groups.AddMember(role, u); err != nil {
		return nil, notFound(err)
	}
	s.Log.WithFields(logrus.Fields{"user_id": u.ID, "group": string(role)}).Info("user added to group")
	return u, nil
}

func (s *GroupService) Remove(role entity.Role, userID uint) (*entity.User, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.Groups.RemoveMember(role, u); err != nil {
		return nil, notFound(err)
	}
	s.Log.WithFields(logrus.Fields{"user_id": u.ID, "group": string(role)}).Info("user removed from group")
	return u, nil
}
