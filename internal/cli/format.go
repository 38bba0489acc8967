package cli

import (
	"fmt"

	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

func formatItem(it *models.Item) string {
	return fmt.Sprintf("[%s] %s | %s | category: %s | owner: %s",
		it.ShortID(), it.Name, it.Description, it.Category, it.Owner.Name)
}

func formatUser(u *models.User) string {
	status := "pending"
	if u.Verified {
		status = "verified"
	}
	return fmt.Sprintf("%d  %s  %s  %s  %s  (%s)", u.ID, u.Name, u.Address, u.Phone, u.Email, status)
}

func formatCategory(c models.Category) string {
	return c.Name + ": " + c.Description
}
