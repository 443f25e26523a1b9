// Package config разрешает слоёную конфигурацию pipeline.
//
// Базовый YAML-документ объединяется с override'ами вида "key=value"
// (dotted-path, как в CLI) в один неизменяемый снимок Config.
// Все шаги run читают из одного и того же снимка; после разрешения
// конфигурация не мутируется.
//
// Обязательные namespace'ы документа: main, etl, data_check, modeling.
package config
