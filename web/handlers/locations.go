package handlers

import (
	"github.com/buildersupply/database"
	"github.com/buildersupply/models"
	"github.com/buildersupply/web/forms"
	"github.com/gofiber/fiber/v2"
)

// LocationList renders all locations grouped by state
func LocationList(c *fiber.Ctx) error {
	groups, err := database.GetLocationsByState(database.GetDB())
	if err != nil {
		return err
	}
	return c.Render("location_list", fiber.Map{
		"PageTitle":    "List of all Locations",
		"CountByState": groups,
	})
}

// LocationDetail renders one location with its weekly schedule
func LocationDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var location models.Location
	found, err := database.GetRow(database.GetDB(), "locations", id, &location)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Location not found.")
	}

	schedule := make([]string, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		if location.IsOpenOn(day) {
			schedule = append(schedule, day+" Open")
		} else {
			schedule = append(schedule, day+" Closed")
		}
	}

	return c.Render("location_detail", fiber.Map{
		"PageTitle": "Location Details",
		"Location":  location,
		"Schedule":  schedule,
	})
}

// LocationCreateForm renders the empty location form
func LocationCreateForm(c *fiber.Ctx) error {
	var stores []models.Store
	if err := database.GetAllRows(database.GetDB(), "stores", &stores); err != nil {
		return err
	}
	return c.Render("location_form", fiber.Map{
		"PageTitle": "Create Location",
		"Days":      models.Weekdays,
		"Stores":    stores,
	})
}

// LocationCreate validates the submitted form and inserts the
// location, re-rendering the form with messages on failure.
func LocationCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var form forms.LocationForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission.")
	}

	fieldErrors := forms.Validate(&form)

	existing, err := database.CheckForLocation(db, form.Address)
	if err != nil {
		return err
	}
	if existing != nil {
		fieldErrors = append(fieldErrors, forms.FieldError{
			Field:   "address",
			Message: "A location with this address already exists.",
		})
	}

	location := models.Location{
		State:       form.State,
		Address:     form.Address,
		PhoneNumber: form.PhoneNumber,
		ZipCode:     form.ZipCode,
		StoreID:     form.StoreID,
	}
	location.SetOpenDays(form.Open)

	if len(fieldErrors) > 0 {
		var stores []models.Store
		if err := database.GetAllRows(db, "stores", &stores); err != nil {
			return err
		}
		return c.Render("location_form", fiber.Map{
			"PageTitle": "Create Location",
			"Location":  location,
			"Days":      models.Weekdays,
			"Stores":    stores,
			"Errors":    fieldErrors,
		})
	}

	created, err := database.AddLocation(db, &location)
	if err != nil {
		return err
	}
	return c.Redirect(created.URL())
}

// LocationDeleteForm renders the delete confirmation page
func LocationDeleteForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var location models.Location
	found, err := database.GetRow(database.GetDB(), "locations", id, &location)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Location not found.")
	}

	return c.Render("location_delete", fiber.Map{
		"PageTitle": "Delete Location",
		"Location":  location,
	})
}

// LocationDelete removes a location; locations have no dependents
func LocationDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var deleted models.Location
	found, err := database.DeleteRow(database.GetDB(), "locations", id, &deleted)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Location not found.")
	}
	return c.Redirect("/store/location")
}

// LocationUpdateForm renders the form pre-filled with the location
func LocationUpdateForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var location models.Location
	found, err := database.GetRow(db, "locations", id, &location)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Location not found.")
	}

	var stores []models.Store
	if err := database.GetAllRows(db, "stores", &stores); err != nil {
		return err
	}

	return c.Render("location_form", fiber.Map{
		"PageTitle": "Update Location",
		"Location":  location,
		"Days":      models.Weekdays,
		"Stores":    stores,
	})
}

// LocationUpdate validates the form and updates the location in place
func LocationUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	db := database.GetDB()

	var form forms.LocationForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission.")
	}

	location := models.Location{
		ID:          id,
		State:       form.State,
		Address:     form.Address,
		PhoneNumber: form.PhoneNumber,
		ZipCode:     form.ZipCode,
		StoreID:     form.StoreID,
	}
	location.SetOpenDays(form.Open)

	if fieldErrors := forms.Validate(&form); len(fieldErrors) > 0 {
		var stores []models.Store
		if err := database.GetAllRows(db, "stores", &stores); err != nil {
			return err
		}
		return c.Render("location_form", fiber.Map{
			"PageTitle": "Update Location",
			"Location":  location,
			"Days":      models.Weekdays,
			"Stores":    stores,
			"Errors":    fieldErrors,
		})
	}

	updated, err := database.UpdateLocation(db, id, &location)
	if err != nil {
		return err
	}
	if updated == nil {
		return fiber.NewError(fiber.StatusNotFound, "Location not found.")
	}
	return c.Redirect(updated.URL())
}
