package broker

// Operation names accepted by the broker.
const (
	OpSettingsGet       = "settings.get"
	OpSettingsSet       = "settings.set"
	OpSettingsKeys      = "settings.keys"
	OpSettingsDeleteKey = "settings.delete_key"
	OpSettingsGetLines  = "settings.get_lines"
	OpSettingsSetLines  = "settings.set_lines"
	OpCodesList         = "codes.list"
	OpCodesEnable       = "codes.enable"
	OpCodesDisable      = "codes.disable"
	OpCredentialsGet    = "credentials.get"
	OpLaunch            = "launch"
	OpVersion           = "version"
)

// Request is one operation sent to the broker.
type Request struct {
	Op      string   `json:"op"`
	File    string   `json:"file,omitempty"`
	Game    string   `json:"game,omitempty"`
	Section string   `json:"section,omitempty"`
	Key     string   `json:"key,omitempty"`
	Value   string   `json:"value,omitempty"`
	Default string   `json:"default,omitempty"`
	Lines   []string `json:"lines,omitempty"`
	Code    string   `json:"code,omitempty"`
	ISOPath string   `json:"isoPath,omitempty"`
}

// CodeInfo is the wire form of one gecko code.
type CodeInfo struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// UserInfo is the wire form of the credential file, minus the play key.
type UserInfo struct {
	UID         string `json:"uid"`
	ConnectCode string `json:"connectCode"`
	DisplayName string `json:"displayName,omitempty"`
}

// Response answers one request.
type Response struct {
	OK      bool       `json:"ok"`
	Error   string     `json:"error,omitempty"`
	Value   string     `json:"value,omitempty"`
	Keys    []string   `json:"keys,omitempty"`
	Lines   []string   `json:"lines,omitempty"`
	Codes   []CodeInfo `json:"codes,omitempty"`
	User    *UserInfo  `json:"user,omitempty"`
	Removed bool       `json:"removed,omitempty"`
	PID     int        `json:"pid,omitempty"`
	Version string     `json:"version,omitempty"`
}

func okResponse() Response {
	return Response{OK: true}
}

func errResponse(err error) Response {
	return Response{OK: false, Error: err.Error()}
}
