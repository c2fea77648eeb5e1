package conf

type Config struct {
	Debug   bool    `toml:"Debug"`
	Report  Report  `toml:"Report"`
	Sources Sources `toml:"Sources"`
}

// Report controls the banner drawn around the report body
type Report struct {
	Title string
	Width int
	Rule  string
}

// Sources lists where the resolvers look for optional data
type Sources struct {
	OSReleasePaths []string
	UserEnv        []string
}
