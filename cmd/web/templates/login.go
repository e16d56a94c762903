package templates

import (
	"github.com/a-h/templ"

	"thirdcoast.systems/hydra/cmd/web/viewtypes"
	c "thirdcoast.systems/hydra/pkg/components"
)

// Login renders the sign-in form with an optional error message.
func Login(errMsg string) templ.Component {
	var alert templ.Component = c.Group()
	if errMsg != "" {
		alert = c.Tag("p", templ.Attributes{"class": viewtypes.ErrorText, "role": "alert"}, c.Text(errMsg))
	}

	user := c.NewTextInput()
	user.FieldName = "username"
	user.Label = "Username"
	user.Placeholder = "Username"
	user.AddClass("mb-3")

	pass := c.NewInput[string](c.InputPassword)
	pass.FieldName = "password"
	pass.Label = "Password"
	pass.Placeholder = "Password"
	pass.AddClass("mb-3")

	submit := c.NewButton("Sign in")
	submit.Type = "submit"

	return Layout("Sign in", c.Tag("main", nil,
		c.Tag("h1", templ.Attributes{"class": viewtypes.PageHeading}, c.Text("Sign in")),
		alert,
		c.Tag("form", templ.Attributes{"method": "post", "action": "/login", "class": viewtypes.SectionCard},
			c.NewLabelFor(&user.Element, "Username"),
			user,
			c.NewLabelFor(&pass.Element, "Password"),
			pass,
			submit,
		),
	))
}
