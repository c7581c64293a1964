// observable パッケージは購読可能な値を提供します。
// 書き込み側は値の所有者だけが持ち、描画側は Reader 経由で購読します。
package observable

import "sync"

// Reader は読み取りと購読だけを公開するインターフェースです。
type Reader[T comparable] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

// Value は変更を購読者に通知する値です。
type Value[T comparable] struct {
	mutex       sync.RWMutex
	value       T
	subscribers map[uint64]func(T)
	nextID      uint64
}

// New は初期値を持つ Value を作成します。
func New[T comparable](initial T) *Value[T] {
	return &Value[T]{
		value:       initial,
		subscribers: make(map[uint64]func(T)),
	}
}

// Get は現在の値を返します。
func (v *Value[T]) Get() T {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.value
}

// Set は値を更新し、変化があった場合だけ購読者を同期的に呼び出します。
func (v *Value[T]) Set(value T) {
	v.mutex.Lock()
	if v.value == value {
		v.mutex.Unlock()
		return
	}
	v.value = value
	subscribers := make([]func(T), 0, len(v.subscribers))
	for _, fn := range v.subscribers {
		subscribers = append(subscribers, fn)
	}
	v.mutex.Unlock()

	// ロック外で通知する（購読者からの Get を許すため）
	for _, fn := range subscribers {
		fn(value)
	}
}

// Subscribe は購読者を登録し、解除用の関数を返します。
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn

	return func() {
		v.mutex.Lock()
		defer v.mutex.Unlock()
		delete(v.subscribers, id)
	}
}
