package config

var configer Configer = &DotenvConfig{}

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

// MustLoadFromDotenv loads the .env file at path into the environment
// and installs a DotenvConfig as the package configer. A missing .env
// file is not an error; the daemon then runs purely off the process
// environment.
func MustLoadFromDotenv(path string) Configer {
	c := NewDotenvConfig(path)
	_ = c.Load()
	SetConfig(c)
	return c
}

func LoadFromPath(path string) error {
	return configer.LoadFromPath(path)
}

func Load() error {
	return configer.Load()
}

func GetKey(key string) string {
	return configer.GetKey(key)
}

func MustGetKey(key string) string {
	return configer.MustGetKey(key)
}

func GetKeyWithDefault(key, defaultValue string) string {
	return configer.GetKeyWithDefault(key, defaultValue)
}

func GetIntKey(key string) int {
	return configer.GetIntKey(key)
}

func MustGetIntKey(key string) int {
	return configer.MustGetIntKey(key)
}

func GetIntKeyWithDefault(key string, defaultValue int) int {
	return configer.GetIntKeyWithDefault(key, defaultValue)
}

func GetBoolKeyWithDefault(key string, defaultValue bool) bool {
	return configer.GetBoolKeyWithDefault(key, defaultValue)
}
