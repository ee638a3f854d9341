package dto

// SchemeRecord is one welfare scheme in the static catalog.
type SchemeRecord struct {
	ID     int      `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Emoji  string   `json:"emoji" yaml:"emoji"`
	Region string   `json:"region" yaml:"region"`
	Desc   string   `json:"desc" yaml:"desc"`
	Fund   string   `json:"fund" yaml:"fund"`
	Tags   []string `json:"tags" yaml:"tags"`
}
