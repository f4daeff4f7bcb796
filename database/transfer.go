package database

import (
	"fmt"
	"log"

	"github.com/buildersupply/docstore"
	"github.com/buildersupply/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// TransferReport summarises one migration run.
type TransferReport struct {
	Stores     int
	Categories int
	Locations  int
	Materials  int
	Skipped    int
}

// transferState carries the per-run id mappings between the document
// store's object ids and the relational ids assigned during insert.
// Rows are matched through these maps, never by name: two stores
// sharing a name must not collide.
type transferState struct {
	storeIDs    map[primitive.ObjectID]int64
	categoryIDs map[primitive.ObjectID]int64
	report      TransferReport
}

// Transfer moves the full document-store object graph into the
// relational schema inside a single transaction. Rows whose owner
// cannot be resolved are logged and skipped; any database failure
// rolls the whole run back, leaving the relational store untouched.
func Transfer(db *gorm.DB, data *docstore.Data) (*TransferReport, error) {
	state := &transferState{
		storeIDs:    make(map[primitive.ObjectID]int64, len(data.Stores)),
		categoryIDs: make(map[primitive.ObjectID]int64, len(data.Categories)),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := EnsureSchema(tx); err != nil {
			return err
		}
		if err := state.insertStores(tx, data); err != nil {
			return err
		}
		if err := state.insertLocations(tx, data); err != nil {
			return err
		}
		if err := state.insertCategories(tx, data); err != nil {
			return err
		}
		if err := state.insertMaterials(tx, data); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("transfer rolled back: %w", err)
	}

	return &state.report, nil
}

// insertStores inserts every store and records its assigned id.
// Stores have no dependencies and go first.
func (s *transferState) insertStores(tx *gorm.DB, data *docstore.Data) error {
	for _, store := range data.Stores {
		var id int64
		err := tx.Raw(
			"INSERT INTO stores (name, date_opened) VALUES (?, ?) RETURNING id",
			store.Name, store.DateOpened,
		).Scan(&id).Error
		if err != nil {
			return fmt.Errorf("failed to insert store %q (%s): %w", store.Name, store.ID.Hex(), err)
		}
		s.storeIDs[store.ID] = id
		s.report.Stores++
	}
	return nil
}

// insertLocations resolves each location's owner through the stores'
// location-reference lists and the store id map.
func (s *transferState) insertLocations(tx *gorm.DB, data *docstore.Data) error {
	ownerOf := make(map[primitive.ObjectID]primitive.ObjectID)
	for _, store := range data.Stores {
		for _, locID := range store.Locations {
			if _, taken := ownerOf[locID]; !taken {
				ownerOf[locID] = store.ID
			}
		}
	}

	for _, loc := range data.Locations {
		ownerID, ok := ownerOf[loc.ID]
		if !ok {
			log.Printf("transfer: skipping location %q (%s): no store references it", loc.Address, loc.ID.Hex())
			s.report.Skipped++
			continue
		}
		storeID, ok := s.storeIDs[ownerID]
		if !ok {
			log.Printf("transfer: skipping location %q (%s): owning store %s was not inserted", loc.Address, loc.ID.Hex(), ownerID.Hex())
			s.report.Skipped++
			continue
		}

		err := tx.Exec(
			"INSERT INTO locations (state, address, phone_number, open, zip_code, store_id) VALUES (?, ?, ?, ?, ?, ?)",
			loc.State, loc.Address, loc.PhoneNumber, models.JoinOpenDays(loc.Open), loc.Zip, storeID,
		).Error
		if err != nil {
			return fmt.Errorf("failed to insert location %q (%s): %w", loc.Address, loc.ID.Hex(), err)
		}
		s.report.Locations++
	}
	return nil
}

// insertCategories resolves each category's owner through the stores'
// category-reference lists and records the assigned category id.
func (s *transferState) insertCategories(tx *gorm.DB, data *docstore.Data) error {
	ownerOf := make(map[primitive.ObjectID]primitive.ObjectID)
	for _, store := range data.Stores {
		for _, catID := range store.Categories {
			if _, taken := ownerOf[catID]; !taken {
				ownerOf[catID] = store.ID
			}
		}
	}

	for _, cat := range data.Categories {
		ownerID, ok := ownerOf[cat.ID]
		if !ok {
			log.Printf("transfer: skipping category %q (%s): no store references it", cat.Name, cat.ID.Hex())
			s.report.Skipped++
			continue
		}
		storeID, ok := s.storeIDs[ownerID]
		if !ok {
			log.Printf("transfer: skipping category %q (%s): owning store %s was not inserted", cat.Name, cat.ID.Hex(), ownerID.Hex())
			s.report.Skipped++
			continue
		}

		var id int64
		err := tx.Raw(
			"INSERT INTO categories (cat_name, summary, store_id) VALUES (?, ?, ?) RETURNING id",
			cat.Name, cat.Summary, storeID,
		).Scan(&id).Error
		if err != nil {
			return fmt.Errorf("failed to insert category %q (%s): %w", cat.Name, cat.ID.Hex(), err)
		}
		s.categoryIDs[cat.ID] = id
		s.report.Categories++
	}
	return nil
}

// insertMaterials resolves each material's owner by scanning the
// categories' material-reference lists, carrying the image fields over.
func (s *transferState) insertMaterials(tx *gorm.DB, data *docstore.Data) error {
	ownerOf := make(map[primitive.ObjectID]primitive.ObjectID)
	for _, cat := range data.Categories {
		for _, matID := range cat.Materials {
			if _, taken := ownerOf[matID]; !taken {
				ownerOf[matID] = cat.ID
			}
		}
	}

	for _, mat := range data.Materials {
		ownerID, ok := ownerOf[mat.ID]
		if !ok {
			log.Printf("transfer: skipping material %q (%s): no category references it", mat.Name, mat.ID.Hex())
			s.report.Skipped++
			continue
		}
		categoryID, ok := s.categoryIDs[ownerID]
		if !ok {
			log.Printf("transfer: skipping material %q (%s): owning category %s was not inserted", mat.Name, mat.ID.Hex(), ownerID.Hex())
			s.report.Skipped++
			continue
		}

		var imgURL, imgID *string
		if mat.Image.URL != "" {
			imgURL = &mat.Image.URL
		}
		if mat.Image.PublicID != "" {
			imgID = &mat.Image.PublicID
		}

		err := tx.Exec(
			"INSERT INTO materials (mat_name, stock, price, category_id, img_url, img_id) VALUES (?, ?, ?, ?, ?, ?)",
			mat.Name, mat.Stock, mat.Price, categoryID, imgURL, imgID,
		).Error
		if err != nil {
			return fmt.Errorf("failed to insert material %q (%s): %w", mat.Name, mat.ID.Hex(), err)
		}
		s.report.Materials++
	}
	return nil
}
