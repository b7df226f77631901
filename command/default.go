package command

const (
	JSONOutputFlag = "json"
	DataDirFlag    = "data-dir"
)
