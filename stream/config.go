package stream

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Values string `yaml:"values"`
		}
	} `yaml:"mqtt"`
	Scene string `yaml:"scene"`
	Api   struct {
		Address string `yaml:"address"`
	} `yaml:"api"`
}
