package services

import (
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ResourceKey adalah segmen awal nama route bergaya resource
// ("users.index" -> "users"). Akses dicek per resource, bukan per route.
type ResourceKey string

// Decision adalah hasil evaluasi akses untuk satu request.
type Decision int

const (
	Allow Decision = iota
	// DenyNoLevel: principal tidak punya level sama sekali.
	DenyNoLevel
	// DenyUnknownRoute: route tidak terdaftar sebagai resource dan tidak
	// ada di allow-list. Route baru yang lupa didaftarkan tertutup rapat.
	DenyUnknownRoute
	// DenyNoMenu: tidak ada menu aktif milik level ini yang cocok.
	DenyNoMenu
)

func (d Decision) Allowed() bool { return d == Allow }

// AccessService memutuskan boleh-tidaknya sebuah request berdasarkan
// binding menu-level. Registry resource diisi sekali saat setup route;
// setelah itu Check hanya membaca.
type AccessService struct {
	DB *gorm.DB

	mu        sync.RWMutex
	resources map[ResourceKey]struct{}
	open      map[string]struct{}
}

func NewAccessService(DB *gorm.DB) *AccessService {
	return &AccessService{
		DB:        DB,
		resources: map[ResourceKey]struct{}{},
		open:      map[string]struct{}{},
	}
}

// RegisterResource mendaftarkan sebuah resource yang dijaga binding menu.
func (s *AccessService) RegisterResource(key ResourceKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[key] = struct{}{}
}

// AllowRoute mendaftarkan route yang terbuka untuk semua user
// terautentikasi, misalnya dashboard.
func (s *AccessService) AllowRoute(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[name] = struct{}{}
}

// Resources mengembalikan daftar resource terdaftar, terurut.
func (s *AccessService) Resources() []ResourceKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := maps.Keys(s.resources)
	slices.Sort(keys)
	return keys
}

// ResolveResource memetakan nama route ke resource terdaftar.
func (s *AccessService) ResolveResource(routeName string) (ResourceKey, bool) {
	base, _, _ := strings.Cut(routeName, ".")
	key := ResourceKey(base)

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.resources[key]
	return key, ok
}

// Check mengevaluasi akses. Murni baca, aman dipanggil paralel.
//
// Sebuah menu dianggap cocok kalau route-nya diawali nama resource, atau
// url-nya diawali "/resource", atau "/resource" dengan tanda hubung
// diganti underscore. Pencocokan longgar ini disengaja: konfigurasi menu
// dan nama route tidak selalu konsisten gaya slug-nya.
func (s *AccessService) Check(levelID *uint, routeName string) (Decision, error) {
	s.mu.RLock()
	_, isOpen := s.open[routeName]
	s.mu.RUnlock()
	if isOpen {
		return Allow, nil
	}

	key, registered := s.ResolveResource(routeName)
	if !registered {
		return DenyUnknownRoute, nil
	}
	if levelID == nil {
		return DenyNoLevel, nil
	}

	base := string(key)
	underscored := strings.ReplaceAll(base, "-", "_")

	var count int64
	err := s.DB.Table("menus").
		Joins("JOIN menu_user_level ON menu_user_level.menu_id = menus.id").
		Where("menu_user_level.user_level_id = ?", *levelID).
		Where("menus.status_aktif = ?", true).
		Where("menus.route LIKE ? OR menus.url LIKE ? OR menus.url LIKE ?",
			base+"%", "/"+base+"%", "/"+underscored+"%").
		Count(&count).Error
	if err != nil {
		return DenyNoMenu, err
	}
	if count == 0 {
		return DenyNoMenu, nil
	}
	return Allow, nil
}
