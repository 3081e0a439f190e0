package config

import (
	"fmt"

	"glassdoor-scraper/internal/selector"
)

// Default selectors match the Glassdoor markup at the time of writing.
// Field selectors take the first non-blank direct text node.
const (
	DefaultLinksSelector    = `//a[@class="JobCard_jobTitle__rbjTE"]`
	DefaultCompanySelector  = `//div[@class="JobDetails_jobDetailsHeader__qKuvs"]/a/div/span/text()`
	DefaultRoleSelector     = `//div[@class="JobDetails_jobDetailsHeader__qKuvs"]/h1/text()`
	DefaultLocationSelector = `//div[@class="JobDetails_jobDetailsHeader__qKuvs"]/div/text()`
	DefaultSalarySelector   = `//div[@class="SalaryEstimate_averageEstimate__xF_7h"]/text()`
)

// Selectors holds the raw selector strings as written in the config file.
type Selectors struct {
	Links    string `yaml:"links"`
	Company  string `yaml:"company"`
	Role     string `yaml:"role"`
	Location string `yaml:"location"`
	Salary   string `yaml:"salary"`
}

type CompiledSelectors struct {
	Links    selector.Selector
	Company  selector.Selector
	Role     selector.Selector
	Location selector.Selector
	Salary   selector.Selector
}

func (s Selectors) Compile() (CompiledSelectors, error) {
	var (
		out CompiledSelectors
		err error
	)
	fields := []struct {
		name string
		raw  string
		dst  *selector.Selector
	}{
		{"links", s.Links, &out.Links},
		{"company", s.Company, &out.Company},
		{"role", s.Role, &out.Role},
		{"location", s.Location, &out.Location},
		{"salary", s.Salary, &out.Salary},
	}
	for _, f := range fields {
		if *f.dst, err = selector.Compile(f.raw); err != nil {
			return CompiledSelectors{}, fmt.Errorf("selectors.%s: %w", f.name, err)
		}
	}
	return out, nil
}
