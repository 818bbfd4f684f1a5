package jaeger

import (
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/exporters/jaeger"
)

func MustNewJaeger() *jaeger.Exporter {
	endpoint := viper.GetString("tracing.jaeger.endpoint")
	if endpoint == "" {
		endpoint = "http://jaeger:14268/api/traces"
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(endpoint),
	))
	if err != nil {
		panic(err)
	}

	return exp
}
