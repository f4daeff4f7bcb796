package handlers

import (
	"io"
	"log"

	"github.com/buildersupply/assets"
	"github.com/buildersupply/database"
	"github.com/buildersupply/models"
	"github.com/buildersupply/web/forms"
	"github.com/gofiber/fiber/v2"
)

// MaterialList renders all materials
func MaterialList(c *fiber.Ctx) error {
	var materials []models.Material
	if err := database.GetAllRows(database.GetDB(), "materials", &materials); err != nil {
		return err
	}

	data := fiber.Map{
		"PageTitle": "Materials",
		"Materials": materials,
	}
	if len(materials) == 0 {
		data["Message"] = "No materials found."
	}
	return c.Render("material_list", data)
}

// MaterialDetail renders one material with its parent category
func MaterialDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var material models.Material
	found, err := database.GetRow(db, "materials", id, &material)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Material not found.")
	}

	category, err := database.GetCategoryOfMaterial(db, material.CategoryID)
	if err != nil {
		return err
	}

	return c.Render("material_detail", fiber.Map{
		"PageTitle": "Material Detail",
		"Material":  material,
		"Category":  category,
	})
}

// MaterialCreateForm renders the empty material form
func MaterialCreateForm(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.GetAllRows(database.GetDB(), "categories", &categories); err != nil {
		return err
	}
	return c.Render("material_form", fiber.Map{
		"PageTitle":  "Create Material",
		"Categories": categories,
	})
}

// MaterialCreate validates the submitted form, uploads the attached
// image if any, and inserts the material.
func MaterialCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var form forms.MaterialForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission.")
	}

	fieldErrors := forms.Validate(&form)

	existing, err := database.CheckForMaterial(db, form.MatName)
	if err != nil {
		return err
	}
	if existing != nil {
		fieldErrors = append(fieldErrors, forms.FieldError{
			Field:   "mat_name",
			Message: "Material with this name already exists.",
		})
	}

	material := models.Material{
		MatName:    form.MatName,
		Stock:      form.Stock,
		Price:      form.Price,
		CategoryID: form.CategoryID,
	}

	if len(fieldErrors) > 0 {
		var categories []models.Category
		if err := database.GetAllRows(db, "categories", &categories); err != nil {
			return err
		}
		return c.Render("material_form", fiber.Map{
			"PageTitle":  "Create Material",
			"Categories": categories,
			"Material":   material,
			"Errors":     fieldErrors,
		})
	}

	if err := attachImage(c, &material); err != nil {
		return err
	}

	created, err := database.AddMaterial(db, &material)
	if err != nil {
		return err
	}
	return c.Redirect(created.URL())
}

// MaterialDeleteForm renders the delete confirmation page
func MaterialDeleteForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var material models.Material
	found, err := database.GetRow(database.GetDB(), "materials", id, &material)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Material not found.")
	}

	return c.Render("material_delete", fiber.Map{
		"PageTitle": "Delete Material",
		"Material":  material,
	})
}

// MaterialDelete removes a material. Hosted assets are left behind;
// the img_id column keeps them reachable for manual cleanup.
func MaterialDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	deleted, err := database.DeleteMaterial(database.GetDB(), id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return fiber.NewError(fiber.StatusNotFound, "Material not found.")
	}
	return c.Redirect("/store/material")
}

// MaterialUpdateForm renders the form pre-filled with the material
func MaterialUpdateForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var material models.Material
	found, err := database.GetRow(db, "materials", id, &material)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Material not found.")
	}

	var categories []models.Category
	if err := database.GetAllRows(db, "categories", &categories); err != nil {
		return err
	}

	return c.Render("material_form", fiber.Map{
		"PageTitle":  "Update Material",
		"Material":   material,
		"Categories": categories,
	})
}

// MaterialUpdate validates the form and updates the material in
// place. A newly attached image replaces the stored url and asset id;
// without one the existing image reference is kept.
func MaterialUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var current models.Material
	found, err := database.GetRow(db, "materials", id, &current)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Material not found.")
	}

	var form forms.MaterialForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission.")
	}

	material := models.Material{
		ID:         id,
		MatName:    form.MatName,
		Stock:      form.Stock,
		Price:      form.Price,
		CategoryID: form.CategoryID,
		ImgURL:     current.ImgURL,
		ImgID:      current.ImgID,
	}

	if fieldErrors := forms.Validate(&form); len(fieldErrors) > 0 {
		var categories []models.Category
		if err := database.GetAllRows(db, "categories", &categories); err != nil {
			return err
		}
		return c.Render("material_form", fiber.Map{
			"PageTitle":  "Update Material",
			"Material":   material,
			"Categories": categories,
			"Errors":     fieldErrors,
		})
	}

	if err := attachImage(c, &material); err != nil {
		return err
	}

	updated, err := database.UpdateMaterial(db, id, &material)
	if err != nil {
		return err
	}
	if updated == nil {
		return fiber.NewError(fiber.StatusNotFound, "Material not found.")
	}
	return c.Redirect(updated.URL())
}

// attachImage uploads the multipart image field, if present, and sets
// the material's image columns. Upload failures surface to the caller.
func attachImage(c *fiber.Ctx, material *models.Material) error {
	header, err := c.FormFile("image")
	if err != nil {
		// No file attached
		return nil
	}

	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded image.")
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded image.")
	}

	url, assetID, err := assets.Upload(c.UserContext(), buf)
	if err != nil {
		log.Printf("Error uploading image for material %q: %v", material.MatName, err)
		return fiber.NewError(fiber.StatusBadGateway, "Image upload failed, please try again.")
	}

	material.ImgURL = &url
	material.ImgID = &assetID
	return nil
}
