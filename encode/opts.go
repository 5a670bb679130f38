package encode

type EncodeOption func(*EncState)

func EncodeOrder(o Order) EncodeOption {
	return func(es *EncState) { es.order = o }
}
