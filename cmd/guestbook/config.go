package main

import (
	"os"

	"github.com/rogpeppe/rjson"
)

type config struct {
	Listen    string `json:"listen"`
	StaticDir string `json:"static_dir"`
	Debug     bool   `json:"debug"`
}

// loadConfig reads the rjson configuration file, tolerating its absence: the
// defaults are enough to run the guestbook out of the box.
func loadConfig(pathname string) (*config, error) {
	c := &config{
		Listen:    ":3000",
		StaticDir: "public",
	}
	f, err := os.Open(pathname)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	err = rjson.NewDecoder(f).Decode(c)
	return c, err
}
