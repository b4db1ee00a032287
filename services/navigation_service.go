package services

import (
	"portal-app/models"

	"gorm.io/gorm"
)

// NavItem adalah bentuk sidebar yang dirender frontend. Url dan Icon
// diteruskan apa adanya; fallback ikon urusan presentasi.
type NavItem struct {
	ID    uint       `json:"id"`
	Title string     `json:"title"`
	Url   *string    `json:"url"`
	Icon  *string    `json:"icon"`
	Items []NavChild `json:"items"`
}

type NavChild struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Url   *string `json:"url"`
}

// NavigationService membangun sidebar untuk satu principal dari data
// menu dan binding yang sama dengan yang dipakai AccessService.
type NavigationService struct {
	DB *gorm.DB
}

func NewNavigationService(DB *gorm.DB) *NavigationService {
	return &NavigationService{DB: DB}
}

// Build mengembalikan menu root aktif milik level, terurut, beserta anak
// aktif yang juga terikat ke level yang sama. Visibilitas anak dinilai
// dari binding si anak sendiri, bukan warisan dari parent. Grup tanpa
// anak tampil tetap dikirim; memangkasnya urusan presentasi. Level nil
// menghasilkan sidebar kosong.
func (s *NavigationService) Build(levelID *uint) ([]NavItem, error) {
	items := []NavItem{}
	if levelID == nil {
		return items, nil
	}

	var roots []models.Menu
	err := s.DB.
		Joins("JOIN menu_user_level ON menu_user_level.menu_id = menus.id").
		Where("menu_user_level.user_level_id = ?", *levelID).
		Where("menus.status_aktif = ?", true).
		Where("menus.parent_id IS NULL").
		Order("menus.urutan asc").
		Find(&roots).Error
	if err != nil {
		return nil, err
	}

	for _, root := range roots {
		var children []models.Menu
		err := s.DB.
			Joins("JOIN menu_user_level ON menu_user_level.menu_id = menus.id").
			Where("menu_user_level.user_level_id = ?", *levelID).
			Where("menus.status_aktif = ?", true).
			Where("menus.parent_id = ?", root.ID).
			Order("menus.urutan asc").
			Find(&children).Error
		if err != nil {
			return nil, err
		}

		item := NavItem{
			ID:    root.ID,
			Title: root.Name,
			Url:   root.Url,
			Icon:  root.Icon,
			Items: []NavChild{},
		}
		for _, child := range children {
			item.Items = append(item.Items, NavChild{
				ID:    child.ID,
				Title: child.Name,
				Url:   child.Url,
			})
		}
		items = append(items, item)
	}

	return items, nil
}
