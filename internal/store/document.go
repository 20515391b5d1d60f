package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrRevisionConflict is returned by CompareAndSave when another writer
// updated the document since the caller loaded it.
var ErrRevisionConflict = errors.New("document revision conflict")

// AppDocument is the single persisted row holding the whole AppState as JSON.
// Revision increments on every write and backs the compare-and-swap path.
type AppDocument struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Data      string `gorm:"type:text"`
	Revision  int64
	UpdatedAt time.Time
}

func (AppDocument) TableName() string { return "app_documents" }

// Store reads and writes the one AppState document under a fixed key. The
// unit of read and write is always the entire state.
type Store struct {
	db  *gorm.DB
	key string
	log *zap.Logger
}

// New creates a document store and migrates its table
func New(db *gorm.DB, key string, log *zap.Logger) (*Store, error) {
	if err := db.AutoMigrate(&AppDocument{}); err != nil {
		return nil, err
	}
	return &Store{db: db, key: key, log: log}, nil
}

// Load fetches the persisted document. A missing document is seeded with the
// default state and persisted; a failing fetch falls back to the default
// state in memory without persisting (degraded mode). Loaded documents get a
// top-level backfill from the default so collections added after the document
// was written are still present.
//
// Load never returns an error: every failure degrades to the default state.
// The returned revision is 0 when nothing is persisted yet.
func (s *Store) Load(ctx context.Context) (*model.AppState, int64) {
	var doc AppDocument
	err := s.db.WithContext(ctx).First(&doc, "key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		st := model.DefaultState()
		rev, saveErr := s.create(ctx, st)
		if saveErr != nil {
			s.log.Error("Failed to seed state document", zap.Error(saveErr))
			return st, 0
		}
		s.log.Info("Seeded default state document", zap.String("key", s.key))
		return st, rev
	}
	if err != nil {
		s.log.Error("Failed to load state document, using default state",
			zap.String("key", s.key),
			zap.Error(err))
		return model.DefaultState(), 0
	}

	var st model.AppState
	if err := json.Unmarshal([]byte(doc.Data), &st); err != nil {
		s.log.Error("Failed to decode state document, using default state",
			zap.String("key", s.key),
			zap.Error(err))
		return model.DefaultState(), 0
	}

	backfill(&st, model.DefaultState())
	return &st, doc.Revision
}

// Save overwrites the entire document with the given state, last write wins.
// The increment and the read-back of the new revision run in one transaction
// so the returned revision is the one this write produced, not whatever a
// concurrent writer left behind.
func (s *Store) Save(ctx context.Context, st *model.AppState) (int64, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return 0, err
	}

	var rev int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&AppDocument{}).
			Where("key = ?", s.key).
			Updates(map[string]interface{}{
				"data":     string(data),
				"revision": gorm.Expr("revision + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			doc := AppDocument{Key: s.key, Data: string(data), Revision: 1}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
			rev = doc.Revision
			return nil
		}

		var doc AppDocument
		if err := tx.Select("revision").First(&doc, "key = ?", s.key).Error; err != nil {
			return err
		}
		rev = doc.Revision
		return nil
	})
	if err != nil {
		s.log.Error("Failed to save state document",
			zap.String("key", s.key),
			zap.Error(err))
		return 0, err
	}
	return rev, nil
}

// CompareAndSave overwrites the document only when its current revision
// matches expected, returning the new revision. A mismatch means another
// writer got there first and yields ErrRevisionConflict instead of a silent
// overwrite.
func (s *Store) CompareAndSave(ctx context.Context, st *model.AppState, expected int64) (int64, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return 0, err
	}

	res := s.db.WithContext(ctx).Model(&AppDocument{}).
		Where("key = ? AND revision = ?", s.key, expected).
		Updates(map[string]interface{}{
			"data":     string(data),
			"revision": expected + 1,
		})
	if res.Error != nil {
		s.log.Error("Failed to save state document",
			zap.String("key", s.key),
			zap.Error(res.Error))
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		s.db.WithContext(ctx).Model(&AppDocument{}).Where("key = ?", s.key).Count(&count)
		if count == 0 {
			return s.create(ctx, st)
		}
		return 0, ErrRevisionConflict
	}
	return expected + 1, nil
}

// Revision returns the current persisted revision, 0 when nothing is stored
func (s *Store) Revision(ctx context.Context) int64 {
	var doc AppDocument
	if err := s.db.WithContext(ctx).Select("revision").First(&doc, "key = ?", s.key).Error; err != nil {
		return 0
	}
	return doc.Revision
}

func (s *Store) create(ctx context.Context, st *model.AppState) (int64, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return 0, err
	}
	doc := AppDocument{Key: s.key, Data: string(data), Revision: 1}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return 0, err
	}
	return doc.Revision, nil
}

// backfill copies any top-level collection missing from the loaded state out
// of the default. The merge is shallow: present collections win wholesale,
// partial records inside them are never touched.
func backfill(st *model.AppState, def *model.AppState) {
	if st.Products == nil {
		st.Products = def.Products
	}
	if st.Categories == nil {
		st.Categories = def.Categories
	}
	if st.Brands == nil {
		st.Brands = def.Brands
	}
	if st.HeroSlides == nil {
		st.HeroSlides = def.HeroSlides
	}
	if st.Orders == nil {
		st.Orders = def.Orders
	}
	if st.Ads == nil {
		st.Ads = def.Ads
	}
	if st.SpecialOffers == nil {
		st.SpecialOffers = def.SpecialOffers
	}
	if st.HelpSections == nil {
		st.HelpSections = def.HelpSections
	}
}
