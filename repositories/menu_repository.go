package repositories

import (
	"errors"
	"strings"

	"portal-app/models"

	"gorm.io/gorm"
)

// Pohon menu maksimal dua tingkat: root dan anak langsungnya.
const maxMenuDepth = 2

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(DB *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: DB}
}

// ListRoots mengembalikan semua menu root terurut berdasarkan urutan,
// lengkap dengan anak-anaknya. Dipakai halaman administrasi menu.
func (r *MenuRepository) ListRoots() ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan asc")
		}).
		Where("parent_id IS NULL").
		Order("urutan asc").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) GetByID(id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan asc")
		}).
		Preload("UserLevels").
		First(&menu, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// ParentOptions mengembalikan menu root yang bisa dipilih sebagai parent,
// tanpa menu itu sendiri.
func (r *MenuRepository) ParentOptions(excludeID uint) ([]models.Menu, error) {
	var menus []models.Menu
	q := r.DB.Where("parent_id IS NULL").Order("urutan asc")
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Create(menu *models.Menu, levelIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.validate(tx, 0, menu); err != nil {
			return err
		}
		if err := tx.Create(menu).Error; err != nil {
			return err
		}
		return r.replaceLevels(tx, menu, levelIDs)
	})
}

func (r *MenuRepository) Update(id uint, input *models.Menu, levelIDs []uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&menu, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuNotFound
			}
			return err
		}

		if err := r.validate(tx, id, input); err != nil {
			return err
		}

		if input.ParentID != nil {
			// Node yang masih punya anak tidak boleh diturunkan,
			// pohon akan melebihi dua tingkat.
			var children int64
			if err := tx.Model(&models.Menu{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
				return err
			}
			if children > 0 {
				return ErrMenuTooDeep
			}
		}

		menu.Name = input.Name
		menu.Icon = input.Icon
		menu.Route = input.Route
		menu.Url = input.Url
		menu.ParentID = input.ParentID
		menu.Urutan = input.Urutan
		menu.IsActive = input.IsActive

		if err := tx.Save(&menu).Error; err != nil {
			return err
		}
		return r.replaceLevels(tx, &menu, levelIDs)
	})
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Delete menghapus sebuah menu beserta seluruh anaknya dan semua baris
// binding yang menunjuk ke mereka, dalam satu transaksi.
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		if err := tx.First(&menu, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuNotFound
			}
			return err
		}

		var childIDs []uint
		if err := tx.Model(&models.Menu{}).Where("parent_id = ?", id).Pluck("id", &childIDs).Error; err != nil {
			return err
		}

		ids := append(childIDs, id)
		if err := tx.Exec("DELETE FROM menu_user_level WHERE menu_id IN ?", ids).Error; err != nil {
			return err
		}
		if len(childIDs) > 0 {
			if err := tx.Where("parent_id = ?", id).Delete(&models.Menu{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Menu{}, id).Error
	})
}

// ReplaceMenuLevels mengganti seluruh set level yang boleh melihat
// sebuah menu. Pemanggilan ulang dengan set yang sama tidak mengubah apa pun.
func (r *MenuRepository) ReplaceMenuLevels(menuID uint, levelIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuNotFound
			}
			return err
		}
		return r.replaceLevels(tx, &menu, levelIDs)
	})
}

// ReplaceLevelMenus adalah operasi kebalikannya, dipanggil saat mengedit
// daftar menu sebuah level.
func (r *MenuRepository) ReplaceLevelMenus(levelID uint, menuIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var level models.UserLevel
		if err := tx.First(&level, levelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLevelNotFound
			}
			return err
		}

		if len(menuIDs) == 0 {
			return tx.Model(&level).Association("Menus").Clear()
		}

		var menus []models.Menu
		if err := tx.Where("id IN ?", menuIDs).Find(&menus).Error; err != nil {
			return err
		}
		if len(menus) != uniqueCount(menuIDs) {
			return &ValidationError{Field: "menus", Message: "menu tidak ditemukan"}
		}
		return tx.Model(&level).Association("Menus").Replace(menus)
	})
}

func (r *MenuRepository) replaceLevels(tx *gorm.DB, menu *models.Menu, levelIDs []uint) error {
	if len(levelIDs) == 0 {
		return tx.Model(menu).Association("UserLevels").Clear()
	}

	var levels []models.UserLevel
	if err := tx.Where("id IN ?", levelIDs).Find(&levels).Error; err != nil {
		return err
	}
	if len(levels) != uniqueCount(levelIDs) {
		return &ValidationError{Field: "user_levels", Message: "user level tidak ditemukan"}
	}
	return tx.Model(menu).Association("UserLevels").Replace(levels)
}

func (r *MenuRepository) validate(tx *gorm.DB, id uint, menu *models.Menu) error {
	if strings.TrimSpace(menu.Name) == "" {
		return &ValidationError{Field: "nama_menu", Message: "nama menu wajib diisi"}
	}
	if menu.Urutan <= 0 {
		return &ValidationError{Field: "urutan", Message: "urutan wajib diisi"}
	}
	if menu.ParentID == nil {
		return nil
	}
	if id != 0 && *menu.ParentID == id {
		return ErrMenuCycle
	}

	var parent models.Menu
	if err := tx.First(&parent, *menu.ParentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "parent_id", Message: "parent menu tidak ditemukan"}
		}
		return err
	}
	if parent.ParentID != nil {
		return ErrMenuTooDeep
	}

	if id != 0 {
		return r.checkAncestry(tx, id, *menu.ParentID)
	}
	return nil
}

// checkAncestry menelusuri rantai parent dari parentID ke atas. Menemukan
// id berarti siklus. Rantai yang lebih panjang dari batas kedalaman juga
// ditolak, jadi data lama yang rusak tidak membuat walk berputar.
func (r *MenuRepository) checkAncestry(tx *gorm.DB, id uint, parentID uint) error {
	cur := &parentID
	for steps := 0; cur != nil; steps++ {
		if *cur == id {
			return ErrMenuCycle
		}
		if steps >= maxMenuDepth {
			return ErrMenuTooDeep
		}
		var node models.Menu
		if err := tx.Select("id", "parent_id").First(&node, *cur).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		cur = node.ParentID
	}
	return nil
}

func uniqueCount(ids []uint) int {
	seen := map[uint]struct{}{}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
