// Package mock holds gomock doubles of the use-case ports used by handler tests.
package mock

//go:generate mockgen -source=../../internal/usecase/commands/availability.go -destination=commands/availability.go -package=commands
//go:generate mockgen -source=../../internal/usecase/commands/booking.go -destination=commands/booking.go -package=commands
//go:generate mockgen -source=../../internal/usecase/commands/appointment.go -destination=commands/appointment.go -package=commands
//go:generate mockgen -source=../../internal/usecase/commands/notification.go -destination=commands/notification.go -package=commands
//go:generate mockgen -source=../../internal/usecase/queries/slot.go -destination=queries/slot.go -package=queries
//go:generate mockgen -source=../../internal/usecase/queries/appointment.go -destination=queries/appointment.go -package=queries
//go:generate mockgen -source=../../internal/usecase/queries/member.go -destination=queries/member.go -package=queries
//go:generate mockgen -source=../../internal/usecase/queries/notification.go -destination=queries/notification.go -package=queries
//go:generate mockgen -source=../../internal/usecase/queries/user.go -destination=queries/user.go -package=queries
