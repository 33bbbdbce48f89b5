package dto

type ExportInput struct {
	Exporter string
	Period   string
}

type ExportOutput struct {
	Exporter    string
	Period      string
	Destination string
	Records     int
}

type ExporterInfo struct {
	Name    string
	Binary  string
	Enabled bool
}

type DoctorOutput struct {
	Name            string
	BinaryReachable bool
	HandshakeOK     bool
	Error           string
}
