package main

import (
	proofdoc "github.com/wlproof/proofdoc"
)

// contextFile is the YAML schema for one render context.
//
//	template:
//	  type: "Odds Manipulating Or Odds Hedging"
//	  content: "<p>User: {USER}, Amount: {AMOUNT}</p>"
//	fields:
//	  user: abcd2000
//	  amount: 150
//	brand:
//	  whitelabelUser: cbtfturbo
//	  logo: uploads/logo.png
//	  hexacode: "#00008B"
//	  url: https://example.com
//	images:
//	  - path: uploads/bet-1.png
//	    filename: bet-1.png
type contextFile struct {
	Template struct {
		Type    string `yaml:"type"`
		Content string `yaml:"content"`
	} `yaml:"template"`
	Fields struct {
		AgentName     string   `yaml:"agentname"`
		User          string   `yaml:"user"`
		Amount        *float64 `yaml:"amount"`
		ProfitAndLoss *float64 `yaml:"profitAndLoss"`
		SportName     string   `yaml:"sportname"`
		EventName     string   `yaml:"eventname"`
		MarketName    string   `yaml:"marketname"`
		Navigation    string   `yaml:"navigation"`
	} `yaml:"fields"`
	Brand struct {
		WhitelabelUser string `yaml:"whitelabelUser"`
		Logo           string `yaml:"logo"`
		AccentColor    string `yaml:"hexacode"`
		URL            string `yaml:"url"`
	} `yaml:"brand"`
	Images []struct {
		Path     string `yaml:"path"`
		Filename string `yaml:"filename"`
	} `yaml:"images"`
}

// toRenderContext converts the file schema to the library type.
func (cf *contextFile) toRenderContext() proofdoc.RenderContext {
	rc := proofdoc.RenderContext{
		Template: &proofdoc.Template{
			TypeName:    cf.Template.Type,
			ContentHTML: cf.Template.Content,
		},
		Fields: proofdoc.Fields{
			AgentName:     cf.Fields.AgentName,
			User:          cf.Fields.User,
			Amount:        cf.Fields.Amount,
			ProfitAndLoss: cf.Fields.ProfitAndLoss,
			SportName:     cf.Fields.SportName,
			EventName:     cf.Fields.EventName,
			MarketName:    cf.Fields.MarketName,
			Navigation:    cf.Fields.Navigation,
		},
		Brand: proofdoc.Brand{
			WhitelabelUser: cf.Brand.WhitelabelUser,
			LogoRef:        cf.Brand.Logo,
			AccentColor:    cf.Brand.AccentColor,
			PublicURL:      cf.Brand.URL,
		},
	}
	for _, img := range cf.Images {
		rc.Images = append(rc.Images, proofdoc.ImageRef{
			Path:     img.Path,
			Filename: img.Filename,
		})
	}
	return rc
}
