package config

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mitchellh/go-wordwrap"
)

// Configure runs the interactive configuration process, writing the result
// to the given file.
func Configure(fname string) error {
	c, err := Load(fname)
	if err != nil {
		fmt.Println("No configuration yet. Creating new.")
		c = New()
	} else {
		fmt.Println("Configuration loaded.")
	}
	title := color.New(color.Bold, color.BgGreen).PrintlnFunc()

	intro := color.New(color.Bold, color.FgWhite).PrintlnFunc()
	fmt.Println()
	intro("  ⛩ ForgeGate Configuration ⛩")
	fmt.Println()
	fmt.Println(wordwrap.WrapString("  This quick configuration process will generate the broker's config file, "+FileName+".\n\n  It validates your input along the way, so you can be sure any future errors aren't caused by a bad configuration. If you'd rather configure your server manually, instead run: forgegate config generate and edit that file.", 75))
	fmt.Println()

	title(" Server setup ")
	fmt.Println()

	tmpls := &promptui.PromptTemplates{
		Success: "{{ . | bold | faint }}: ",
	}
	selTmpls := &promptui.SelectTemplates{
		Selected: `{{.Label}} {{ . | faint }}`,
	}

	prompt := promptui.Prompt{
		Templates: tmpls,
		Label:     "Local port",
		Validate:  validatePort,
		Default:   fmt.Sprintf("%d", c.Server.Port),
	}
	port, err := prompt.Run()
	if err != nil {
		return err
	}
	c.Server.Port, _ = strconv.Atoi(port) // Ignore error, as we've already validated number

	prompt = promptui.Prompt{
		Templates: tmpls,
		Label:     "Public URL",
		Validate:  validateDomain,
		Default:   c.App.Host,
	}
	c.App.Host, err = prompt.Run()
	if err != nil {
		return err
	}

	fmt.Println()
	title(" GitHub OAuth setup ")
	fmt.Println()

	prompt = promptui.Prompt{
		Templates: tmpls,
		Label:     "Client ID",
		Validate:  validateNonEmpty,
		Default:   c.GitHubOauth.ClientID,
	}
	c.GitHubOauth.ClientID, err = prompt.Run()
	if err != nil {
		return err
	}

	selPrompt := promptui.Select{
		Templates: selTmpls,
		Label:     "Callback mode",
		Items:     []string{"Server-side token exchange", "Code pass-through"},
	}
	_, mode, err := selPrompt.Run()
	if err != nil {
		return err
	}
	c.GitHubOauth.PassThrough = mode == "Code pass-through"

	if !c.GitHubOauth.PassThrough {
		prompt = promptui.Prompt{
			Templates: tmpls,
			Label:     "Client secret",
			Validate:  validateNonEmpty,
			Default:   c.GitHubOauth.ClientSecret,
			Mask:      '*',
		}
		c.GitHubOauth.ClientSecret, err = prompt.Run()
		if err != nil {
			return err
		}
	}

	prompt = promptui.Prompt{
		Templates: tmpls,
		Label:     "OAuth scope",
		Default:   OrDefaultString(c.GitHubOauth.Scope, "repo"),
	}
	c.GitHubOauth.Scope, err = prompt.Run()
	if err != nil {
		return err
	}

	return Save(c, fname)
}
