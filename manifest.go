package main

import (
	"io/ioutil"
	"os"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const manifestFile = "celestial.yaml"

type celestialModule struct {
	Package string `yaml:"package"`
	Entry   string `yaml:"entry,omitempty"`
}

// loadManifest reads the module manifest at path. A missing manifest is not an
// error; ok reports whether one was found.
func loadManifest(path string) (doc celestialModule, ok bool, err error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return celestialModule{}, false, nil
	}
	if err != nil {
		return celestialModule{}, false, tracerr.Wrap(err)
	}

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return celestialModule{}, false, tracerr.Wrap(err)
	}

	return doc, true, nil
}

func writeManifest(path string, doc celestialModule) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}
