package handlers

import (
	"log"

	"github.com/buildersupply/database"
	"github.com/buildersupply/models"
	"github.com/buildersupply/web/forms"
	"github.com/gofiber/fiber/v2"
)

// CategoryList renders all categories
func CategoryList(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.GetAllRows(database.GetDB(), "categories", &categories); err != nil {
		return err
	}

	data := fiber.Map{
		"PageTitle":  "Categories",
		"Categories": categories,
	}
	if len(categories) == 0 {
		data["Message"] = "No categories found."
	}
	return c.Render("category_list", data)
}

// CategoryDetail renders one category with its materials and store
func CategoryDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var category models.Category
	found, err := database.GetRow(db, "categories", id, &category)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Category not found.")
	}

	materials, err := database.GetMaterialsInCategory(db, id)
	if err != nil {
		return err
	}

	var store models.Store
	found, err = database.GetRow(db, "stores", category.StoreID, &store)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Store not found.")
	}

	return c.Render("category_detail", fiber.Map{
		"PageTitle": "Category Detail",
		"Category":  category,
		"Materials": materials,
		"Store":     store,
	})
}

// CategoryCreateForm renders the empty category form
func CategoryCreateForm(c *fiber.Ctx) error {
	var stores []models.Store
	if err := database.GetAllRows(database.GetDB(), "stores", &stores); err != nil {
		return err
	}
	return c.Render("category_form", fiber.Map{
		"PageTitle": "Create Category",
		"Stores":    stores,
	})
}

// CategoryCreate validates the submitted form and inserts the
// category, re-rendering the form with messages on failure.
func CategoryCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var form forms.CategoryForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission.")
	}

	fieldErrors := forms.Validate(&form)

	// Duplicate names are a conflict appended to the message list,
	// not a hard failure.
	existing, err := database.CheckForCategory(db, form.CatName)
	if err != nil {
		return err
	}
	if existing != nil {
		fieldErrors = append(fieldErrors, forms.FieldError{
			Field:   "cat_name",
			Message: "Category with this name already exists.",
		})
	}

	category := models.Category{
		CatName: form.CatName,
		Summary: form.Summary,
		StoreID: form.StoreID,
	}

	if len(fieldErrors) > 0 {
		var stores []models.Store
		if err := database.GetAllRows(db, "stores", &stores); err != nil {
			return err
		}
		return c.Render("category_form", fiber.Map{
			"PageTitle": "Create Category",
			"Stores":    stores,
			"Category":  category,
			"Errors":    fieldErrors,
		})
	}

	created, err := database.AddCategory(db, &category)
	if err != nil {
		log.Printf("Error adding new category %q: %v", category.CatName, err)
		return err
	}
	return c.Redirect(created.URL())
}

// CategoryDeleteForm renders the delete confirmation page
func CategoryDeleteForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var category models.Category
	found, err := database.GetRow(database.GetDB(), "categories", id, &category)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Category not found.")
	}

	return c.Render("category_delete", fiber.Map{
		"PageTitle": "Delete Category",
		"Category":  category,
	})
}

// CategoryDelete deletes a category unless materials still reference
// it, in which case the confirmation page lists the blockers.
func CategoryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var category models.Category
	found, err := database.GetRow(db, "categories", id, &category)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Category not found.")
	}

	linked, err := database.CheckForLinkedMaterials(db, id)
	if err != nil {
		return err
	}
	if len(linked) > 0 {
		return c.Render("category_delete", fiber.Map{
			"PageTitle":       "Delete Category",
			"Category":        category,
			"LinkedMaterials": linked,
		})
	}

	deleted, err := database.DeleteCategory(db, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category: "+category.CatName)
	}
	return c.Redirect("/store/category")
}

// CategoryUpdateForm renders the form pre-filled with the category
func CategoryUpdateForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var category models.Category
	found, err := database.GetRow(db, "categories", id, &category)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Category not found.")
	}

	var stores []models.Store
	if err := database.GetAllRows(db, "stores", &stores); err != nil {
		return err
	}

	return c.Render("category_form", fiber.Map{
		"PageTitle": "Update Category",
		"Category":  category,
		"Stores":    stores,
	})
}

// CategoryUpdate validates the form and updates the category in place
func CategoryUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var form forms.CategoryForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission.")
	}

	category := models.Category{
		ID:      id,
		CatName: form.CatName,
		Summary: form.Summary,
		StoreID: form.StoreID,
	}

	if fieldErrors := forms.Validate(&form); len(fieldErrors) > 0 {
		var stores []models.Store
		if err := database.GetAllRows(db, "stores", &stores); err != nil {
			return err
		}
		return c.Render("category_form", fiber.Map{
			"PageTitle": "Update Category",
			"Category":  category,
			"Stores":    stores,
			"Errors":    fieldErrors,
		})
	}

	updated, err := database.UpdateCategory(db, id, &category)
	if err != nil {
		return err
	}
	if updated == nil {
		return fiber.NewError(fiber.StatusNotFound, "Category not found.")
	}
	return c.Redirect(updated.URL())
}
