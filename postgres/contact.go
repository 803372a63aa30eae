package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"addressbook/contact"
	"addressbook/errs"

	"gorm.io/gorm"
)

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FirstName string    `gorm:"size:50;not null;index"`
	LastName  string    `gorm:"size:50;not null;index"`
	Phone     string    `gorm:"size:20;not null"`
	Email     string    `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// columns maps each updatable field to its column.
var columns = map[contact.Field]string{
	contact.FieldFirstName: "first_name",
	contact.FieldLastName:  "last_name",
	contact.FieldPhone:     "phone",
	contact.FieldEmail:     "email",
}

const contactOrder = "last_name, first_name, id"

// ContactRepository implements contact.Repository interface
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	var models []ContactModel
	if err := r.db.WithContext(ctx).Order(contactOrder).Find(&models).Error; err != nil {
		return nil, TranslateError(err)
	}
	return toDomainContacts(models), nil
}

// SearchContacts matches term as a literal, case-insensitive substring of
// first name, last name or email.
func (r *ContactRepository) SearchContacts(ctx context.Context, term string) ([]contact.Contact, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	var models []ContactModel
	err := r.db.WithContext(ctx).
		Where(`LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Order(contactOrder).
		Find(&models).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return toDomainContacts(models), nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (contact.Contact, error) {
	var model ContactModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return contact.Contact{}, contact.ErrContactNotFound
		}
		return contact.Contact{}, TranslateError(err)
	}

	return toDomainContact(model), nil
}

// CreateContact inserts c and returns the stored record with its id and timestamps.
func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	model := ContactModel{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return contact.Contact{}, writeError(err)
	}

	return r.GetByID(ctx, model.ID)
}

// UpdateContact sets only the supplied columns and refreshes updated_at.
func (r *ContactRepository) UpdateContact(ctx context.Context, id int64, fields contact.Fields) (contact.Contact, error) {
	if len(fields) == 0 {
		return contact.Contact{}, contact.ErrNothingToUpdate
	}

	values := make(map[string]interface{}, len(fields)+1)
	for field, value := range fields {
		column, ok := columns[field]
		if !ok {
			return contact.Contact{}, errs.Errorf(errs.EINVALID, "unknown field %q", field)
		}
		values[column] = value
	}
	values["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return contact.Contact{}, writeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return contact.Contact{}, contact.ErrContactNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ContactRepository) DeleteContact(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ContactModel{})
	if result.Error != nil {
		return false, TranslateError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ExistsByEmail reports whether another contact uses email, ignoring case.
// excludeID <= 0 disables the exclusion.
func (r *ContactRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("LOWER(email) = LOWER(?)", email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, TranslateError(err)
	}
	return count > 0, nil
}

// writeError reports a unique violation on insert or update as a duplicate email,
// the only unique column besides the id.
func writeError(err error) error {
	err = TranslateError(err)
	if errs.ErrorCode(err) == errs.ECONFLICT {
		return contact.ErrEmailAlreadyExists
	}
	return err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toDomainContact(m ContactModel) contact.Contact {
	return contact.Contact{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainContacts(models []ContactModel) []contact.Contact {
	contacts := make([]contact.Contact, len(models))
	for i, m := range models {
		contacts[i] = toDomainContact(m)
	}
	return contacts
}
