package contact

import (
	"context"
	"strings"
)

type Service interface {
	ListContacts(ctx context.Context) ([]Contact, error)
	SearchContacts(ctx context.Context, term string) ([]Contact, error)
	GetContact(ctx context.Context, id int64) (Contact, error)
	AddContact(ctx context.Context, p Payload) (Contact, error)
	UpdateContact(ctx context.Context, id int64, p Payload) (Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type Repository interface {
	AllContacts(ctx context.Context) ([]Contact, error)
	SearchContacts(ctx context.Context, term string) ([]Contact, error)
	GetByID(ctx context.Context, id int64) (Contact, error)
	CreateContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, id int64, fields Fields) (Contact, error)
	DeleteContact(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListContacts(ctx context.Context) ([]Contact, error) {
	return uc.r.AllContacts(ctx)
}

// SearchContacts lists every contact when term is blank.
func (uc *Usecase) SearchContacts(ctx context.Context, term string) ([]Contact, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.r.AllContacts(ctx)
	}
	return uc.r.SearchContacts(ctx, term)
}

func (uc *Usecase) GetContact(ctx context.Context, id int64) (Contact, error) {
	if id <= 0 {
		return Contact{}, ErrInvalidID
	}
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) AddContact(ctx context.Context, p Payload) (Contact, error) {
	fields, err := Validate(p, ModeCreate)
	if err != nil {
		return Contact{}, err
	}

	exists, err := uc.r.ExistsByEmail(ctx, fields[FieldEmail], 0)
	if err != nil {
		return Contact{}, err
	}
	if exists {
		return Contact{}, ErrEmailAlreadyExists
	}

	return uc.r.CreateContact(ctx, fields.Contact())
}

// UpdateContact applies a partial update. Only fields present in p change.
func (uc *Usecase) UpdateContact(ctx context.Context, id int64, p Payload) (Contact, error) {
	if id <= 0 {
		return Contact{}, ErrInvalidID
	}

	fields, err := Validate(p, ModeUpdate)
	if err != nil {
		return Contact{}, err
	}

	current, err := uc.r.GetByID(ctx, id)
	if err != nil {
		return Contact{}, err
	}

	if email, ok := fields.Get(FieldEmail); ok && !strings.EqualFold(email, current.Email) {
		exists, err := uc.r.ExistsByEmail(ctx, email, id)
		if err != nil {
			return Contact{}, err
		}
		if exists {
			return Contact{}, ErrEmailAlreadyExists
		}
	}

	return uc.r.UpdateContact(ctx, id, fields)
}

func (uc *Usecase) DeleteContact(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	if _, err := uc.r.GetByID(ctx, id); err != nil {
		return err
	}

	deleted, err := uc.r.DeleteContact(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDeleteFailed
	}
	return nil
}
