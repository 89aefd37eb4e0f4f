package services

import (
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RestaurantService struct {
	DB    *gorm.DB
	Repo  *repository.RestaurantRepository
	Guard Guard
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo}
}

type RestaurantIn struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CuisineType string   `json:"cuisineType"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
}

// Create registers the owner's restaurant. One restaurant per owner;
// the owner binding never changes afterwards.
func (s *RestaurantService) Create(actor Principal, in *RestaurantIn) (*RestaurantView, error) {
	existing, err := s.Repo.FindByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %d already owns restaurant %d",
			apperr.ErrOperationNotAllowed, actor.ID, existing.ID)
	}

	rest := &entity.Restaurant{
		Name:        in.Name,
		Description: in.Description,
		CuisineType: in.CuisineType,
		Address:     in.Address,
		Images:      in.Images,
		Open:        false,
		OwnerID:     actor.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, rest)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": rest.ID,
		"owner_id":      actor.ID,
	}).Info("restaurant created")
	return mapRestaurantView(rest), nil
}

func (s *RestaurantService) Update(actor Principal, id uint, in *RestaurantIn) (*RestaurantView, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return nil, err
	}

	rest.Name = in.Name
	rest.Description = in.Description
	rest.CuisineType = in.CuisineType
	rest.Address = in.Address
	rest.Images = in.Images

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, rest)
	})
	if err != nil {
		return nil, err
	}
	return mapRestaurantView(rest), nil
}

func (s *RestaurantService) ToggleOpen(actor Principal, id uint) (*RestaurantView, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return nil, err
	}

	rest.Open = !rest.Open
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, rest)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": rest.ID,
		"open":          rest.Open,
	}).Info("restaurant open state toggled")
	return mapRestaurantView(rest), nil
}

// Delete removes the restaurant; only its owner or an admin may do it.
func (s *RestaurantService) Delete(actor Principal, id uint) error {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, rest.ID)
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"restaurant_id": rest.ID,
		"actor_id":      actor.ID,
	}).Warn("restaurant deleted")
	return nil
}

func (s *RestaurantService) List() ([]RestaurantView, error) {
	rests, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	return mapRestaurantViews(rests), nil
}

func (s *RestaurantService) Search(keyword string) ([]RestaurantView, error) {
	rests, err := s.Repo.Search(keyword)
	if err != nil {
		return nil, err
	}
	return mapRestaurantViews(rests), nil
}

func (s *RestaurantService) Detail(id uint) (*RestaurantView, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return mapRestaurantView(rest), nil
}

func (s *RestaurantService) FindByOwner(actor Principal) (*RestaurantView, error) {
	rest, err := s.Repo.FindByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, fmt.Errorf("%w: user %d owns no restaurant", apperr.ErrNotFound, actor.ID)
	}
	return mapRestaurantView(rest), nil
}

// ----- favorites -----

// AddFavorite appends a denormalized snapshot of the restaurant to the
// user's favorites. A second add for the same pair is rejected, not
// silently ignored. The snapshot never tracks later restaurant edits.
func (s *RestaurantService) AddFavorite(actor Principal, restaurantID uint) (*FavoriteView, error) {
	rest, err := s.Repo.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.FavoriteExists(actor.ID, restaurantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: restaurant %d is already in favorites",
			apperr.ErrOperationNotAllowed, restaurantID)
	}

	fav := &entity.Favorite{
		UserID:       actor.ID,
		RestaurantID: rest.ID,
		Title:        rest.Name,
		Description:  rest.Description,
		Images:       rest.Images,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateFavorite(tx, fav)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":       actor.ID,
		"restaurant_id": rest.ID,
	}).Info("restaurant added to favorites")
	return &FavoriteView{
		RestaurantID: fav.RestaurantID,
		Title:        fav.Title,
		Description:  fav.Description,
		Images:       fav.Images,
	}, nil
}

func (s *RestaurantService) ListFavorites(actor Principal) ([]FavoriteView, error) {
	favs, err := s.Repo.ListFavorites(actor.ID)
	if err != nil {
		return nil, err
	}
	out := make([]FavoriteView, 0, len(favs))
	for _, f := range favs {
		out = append(out, FavoriteView{
			RestaurantID: f.RestaurantID,
			Title:        f.Title,
			Description:  f.Description,
			Images:       f.Images,
		})
	}
	return out, nil
}

func mapRestaurantViews(rests []entity.Restaurant) []RestaurantView {
	out := make([]RestaurantView, 0, len(rests))
	for i := range rests {
		out = append(out, *mapRestaurantView(&rests[i]))
	}
	return out
}
