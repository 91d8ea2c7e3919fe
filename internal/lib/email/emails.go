package email

// SendWelcomeEmail greets a newly registered guest.
func (c *Client) SendWelcomeEmail(to, name string) error {
	return c.SendEmail(to, "Welcome to LightBnB!", TemplateWelcome, map[string]string{
		"UserName": name,
	})
}

// SendPropertyListedEmail confirms to an owner that a listing is live.
// costPerNight is already formatted for display.
func (c *Client) SendPropertyListedEmail(to, ownerName, title, city, costPerNight string) error {
	return c.SendEmail(to, "Your property is listed on LightBnB", TemplatePropertyListed, map[string]string{
		"OwnerName":    ownerName,
		"Title":        title,
		"City":         city,
		"CostPerNight": costPerNight,
	})
}
