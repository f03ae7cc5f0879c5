//go:generate mockgen -source=../validator.go     -destination=./mock_validator.go     -package=mocks
//go:generate mockgen -source=../logger.go        -destination=./mock_logger.go        -package=mocks
//go:generate mockgen -source=../status_poller.go -destination=./mock_status_poller.go -package=mocks

package mocks
