package repositories

import (
	"errors"
	"strings"

	"portal-app/models"

	"gorm.io/gorm"
)

// ReservedLevelCode adalah kode level superuser yang di-seed sekali dan
// tidak pernah muncul di surface administrasi level.
const ReservedLevelCode = "it_support"

// IsProtectedLevel adalah satu-satunya tempat pengecekan proteksi level;
// semua mutasi store wajib lewat sini.
func IsProtectedLevel(code string) bool {
	return code == ReservedLevelCode
}

type UserLevelRepository struct {
	DB *gorm.DB
}

func NewUserLevelRepository(DB *gorm.DB) *UserLevelRepository {
	return &UserLevelRepository{DB: DB}
}

// List mengembalikan level untuk surface admin. Level reserved tidak
// pernah ikut, jadi tidak bisa dipilih ataupun diutak-atik dari UI.
func (r *UserLevelRepository) List(activeOnly bool) ([]models.UserLevel, error) {
	var levels []models.UserLevel
	q := r.DB.Where("kode_level <> ?", ReservedLevelCode).Order("id asc")
	if activeOnly {
		q = q.Where("status_aktif = ?", true)
	}
	err := q.Find(&levels).Error
	return levels, err
}

func (r *UserLevelRepository) GetByID(id uint) (*models.UserLevel, error) {
	var level models.UserLevel
	err := r.DB.Preload("Menus").First(&level, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}
	if IsProtectedLevel(level.Code) {
		return nil, ErrLevelProtected
	}
	return &level, nil
}

func (r *UserLevelRepository) Create(level *models.UserLevel) error {
	if err := r.validate(level, 0); err != nil {
		return err
	}
	return r.DB.Create(level).Error
}

func (r *UserLevelRepository) Update(id uint, input *models.UserLevel) (*models.UserLevel, error) {
	var level models.UserLevel
	if err := r.DB.First(&level, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}
	if IsProtectedLevel(level.Code) {
		return nil, ErrLevelProtected
	}
	if err := r.validate(input, id); err != nil {
		return nil, err
	}

	level.Name = input.Name
	level.Code = input.Code
	level.Description = input.Description
	level.IsActive = input.IsActive

	if err := r.DB.Save(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// Delete menolak level yang masih dipakai user dan membersihkan seluruh
// binding menu level tersebut dalam transaksi yang sama.
func (r *UserLevelRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var level models.UserLevel
		if err := tx.First(&level, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLevelNotFound
			}
			return err
		}
		if IsProtectedLevel(level.Code) {
			return ErrLevelProtected
		}

		var users int64
		if err := tx.Model(&models.User{}).Where("user_level_id = ?", id).Count(&users).Error; err != nil {
			return err
		}
		if users > 0 {
			return ErrLevelInUse
		}

		if err := tx.Model(&level).Association("Menus").Clear(); err != nil {
			return err
		}
		return tx.Delete(&level).Error
	})
}

func (r *UserLevelRepository) validate(level *models.UserLevel, excludeID uint) error {
	if strings.TrimSpace(level.Name) == "" {
		return &ValidationError{Field: "nama_level", Message: "nama level wajib diisi"}
	}
	if strings.TrimSpace(level.Code) == "" {
		return &ValidationError{Field: "kode_level", Message: "kode level wajib diisi"}
	}
	if IsProtectedLevel(level.Code) {
		return ErrLevelProtected
	}

	var count int64
	q := r.DB.Model(&models.UserLevel{}).Where("kode_level = ?", level.Code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Field: "kode_level", Message: "kode level sudah dipakai"}
	}
	return nil
}
