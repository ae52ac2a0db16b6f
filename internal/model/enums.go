package model

// EstadoReserva is the lifecycle state of a reservation.
type EstadoReserva string

const (
	ReservaPendiente  EstadoReserva = "PENDIENTE"
	ReservaConfirmada EstadoReserva = "CONFIRMADA"
	ReservaCancelada  EstadoReserva = "CANCELADA"
)

// EstadoMesa is the occupancy state of a table.
type EstadoMesa string

const (
	MesaLibre     EstadoMesa = "LIBRE"
	MesaOcupada   EstadoMesa = "OCUPADA"
	MesaReservada EstadoMesa = "RESERVADA"
)

// EstadoPedido is the kitchen/service state of an order.
type EstadoPedido string

const (
	PedidoPendiente     EstadoPedido = "PENDIENTE"
	PedidoEnPreparacion EstadoPedido = "EN_PREPARACION"
	PedidoServido       EstadoPedido = "SERVIDO"
	PedidoPagado        EstadoPedido = "PAGADO"
	PedidoCancelado     EstadoPedido = "CANCELADO"
)

// MetodoPago is the payment method recorded on an invoice.
type MetodoPago string

const (
	PagoEfectivo MetodoPago = "EFECTIVO"
	PagoQR       MetodoPago = "QR"
	PagoTarjeta  MetodoPago = "TARJETA"
)
