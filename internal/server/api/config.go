package api

// ServerConfig represents the control page configuration of the receive command.
type ServerConfig struct {
	Addr      string `help:"Control page listen address" default:":80" env:"WIIBRIDGE_API_ADDR"`
	APAddress string `name:"ap-address" help:"Access point address; foreign hosts are redirected here" default:"192.168.4.1" env:"WIIBRIDGE_API_AP_ADDRESS"`
}
