package siteconfig

// User is the site override maintained in this repository.
var User = UserConfig{
	Site: &UserSiteConfig{
		Title:       String("アンチノミー"),
		Subtitle:    String("Antinomy"),
		Author:      String("Shen, 1024th"),
		Description: String("Aren't learning new things and doing research an antinomy?"),
		Website:     String("https://RabbitCabbage.github.io/Blogs"),
		SocialLinks: []SocialLink{
			{Name: "github", Href: "https://github.com/RabbitCabbage/Blogs"},
			{Name: "rss", Href: BasePathToken + "/atom.xml"},
		},
	},
	Seo: &UserSeoConfig{Twitter: String("")},
}
